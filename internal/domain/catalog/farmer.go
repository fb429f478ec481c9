package catalog

import "time"

// Farmer is a registered producer. TotalProducts tracks the number of catalog
// products owned by this farmer and is maintained incrementally on product
// registration, never recomputed.
type Farmer struct {
	ID            int64
	Name          string
	Address       string
	Location      string
	Image         string
	Specialties   []string
	Experience    string
	Rating        float64
	TotalProducts int
	Verified      bool
	Bio           string
	FarmSize      float64
	JoinedAt      time.Time
}

// Clone returns an independent copy of the farmer, including its specialties.
func (f *Farmer) Clone() *Farmer {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Specialties = append([]string(nil), f.Specialties...)
	return &clone
}
