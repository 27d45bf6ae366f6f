package worldmodel

// Capacity3D holds a volume/mass pair, used both as a StorageFacility's
// nominal capacity and its current contents.
type Capacity3D struct {
	Volume float64
	Mass   float64
}

// StorageEntry is one resource's holdings inside a StorageFacility.
type StorageEntry struct {
	Resource *Resource
	Quantity int64
}

// StorageFacility is one agent's mass/volume-capped storage on one planet.
// Invariant I3: Current.Volume/Mass must always equal the sum over
// ByResource entries of quantity*volumePerQuantity / quantity*massPerQuantity.
type StorageFacility struct {
	Capacity   Capacity3D
	Current    Capacity3D
	Scale      float64
	ByResource map[string]*StorageEntry // resource name -> entry
}

// NewStorageFacility creates an empty storage facility at the given scale.
func NewStorageFacility(capacity Capacity3D, scale float64) *StorageFacility {
	return &StorageFacility{
		Capacity:   capacity,
		Scale:      scale,
		ByResource: make(map[string]*StorageEntry),
	}
}

// QuantityOf returns how much of the named resource is currently stored.
func (s *StorageFacility) QuantityOf(name string) int64 {
	if e, ok := s.ByResource[name]; ok {
		return e.Quantity
	}
	return 0
}

// PutIntoStorage stores up to q units of resource r, clamped by remaining
// volume and mass headroom (spec §4.6). Returns the quantity actually
// stored — capacity ties are not an error, just a smaller deposit.
func (s *StorageFacility) PutIntoStorage(r *Resource, q int64) int64 {
	if q <= 0 || r.IsLandBound() {
		return 0
	}

	volumeHeadroom := s.Capacity.Volume*s.Scale - s.Current.Volume
	massHeadroom := s.Capacity.Mass*s.Scale - s.Current.Mass
	if volumeHeadroom < 0 {
		volumeHeadroom = 0
	}
	if massHeadroom < 0 {
		massHeadroom = 0
	}

	volumeRestriction := 1.0
	if r.VolumePerQuantity > 0 {
		if vr := volumeHeadroom / (float64(q) * r.VolumePerQuantity); vr < volumeRestriction {
			volumeRestriction = vr
		}
	}
	massRestriction := 1.0
	if r.MassPerQuantity > 0 {
		if mr := massHeadroom / (float64(q) * r.MassPerQuantity); mr < massRestriction {
			massRestriction = mr
		}
	}
	restriction := volumeRestriction
	if massRestriction < restriction {
		restriction = massRestriction
	}
	if restriction < 0 {
		restriction = 0
	}
	if restriction > 1 {
		restriction = 1
	}

	stored := int64(float64(q) * restriction)
	if stored <= 0 {
		return 0
	}

	entry, ok := s.ByResource[r.Name]
	if !ok {
		entry = &StorageEntry{Resource: r}
		s.ByResource[r.Name] = entry
	}
	entry.Quantity += stored
	s.Current.Volume += float64(stored) * r.VolumePerQuantity
	s.Current.Mass += float64(stored) * r.MassPerQuantity
	return stored
}

// RemoveFromStorage removes up to q units of the named resource, clamped to
// what is actually present. Returns the quantity actually removed.
func (s *StorageFacility) RemoveFromStorage(name string, q int64) int64 {
	entry, ok := s.ByResource[name]
	if !ok || q <= 0 {
		return 0
	}
	removed := q
	if removed > entry.Quantity {
		removed = entry.Quantity
	}
	entry.Quantity -= removed
	s.Current.Volume -= float64(removed) * entry.Resource.VolumePerQuantity
	s.Current.Mass -= float64(removed) * entry.Resource.MassPerQuantity
	if s.Current.Volume < 0 {
		s.Current.Volume = 0
	}
	if s.Current.Mass < 0 {
		s.Current.Mass = 0
	}
	return removed
}

// QueryClaimedResource sums the quantity of claims for resource name on
// planet whose tenant is agentID (spec §4.6).
func QueryClaimedResource(claims []*ResourceClaim, resourceName string, agentID string) int64 {
	var total int64
	for _, c := range claims {
		if c.Resource.Name != resourceName || c.Tenant == nil || *c.Tenant != agentID {
			continue
		}
		total += c.Quantity
	}
	return total
}

// ExtractFromClaimedResource deducts up to q units across the tenant's
// claims for resourceName, in list order, greedily. Returns the total
// actually extracted — a shortfall is a capacity underrun, not an error.
func ExtractFromClaimedResource(claims []*ResourceClaim, resourceName string, agentID string, q int64) int64 {
	remaining := q
	var extracted int64
	for _, c := range claims {
		if remaining <= 0 {
			break
		}
		if c.Resource.Name != resourceName || c.Tenant == nil || *c.Tenant != agentID {
			continue
		}
		take := remaining
		if take > c.Quantity {
			take = c.Quantity
		}
		c.Quantity -= take
		remaining -= take
		extracted += take
	}
	return extracted
}
