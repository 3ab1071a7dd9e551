package domain

import "time"

// Session defaults applied on create and reset
const (
	DefaultSkillLevel = 1
	DefaultSeason     = SeasonSpring
)

// SessionState is the full set of selections for one estimator session
type SessionState struct {
	ID                  string          `json:"id"`
	SkillLevel          int             `json:"skill_level"`
	Season              Season          `json:"season"`
	HasTiller           bool            `json:"has_tiller"`
	HasArtisan          bool            `json:"has_artisan"`
	DistributionVisible bool            `json:"distribution_visible"`
	Rows                []AllocationRow `json:"rows"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate without touching stored state
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	out := *s
	out.Rows = make([]AllocationRow, len(s.Rows))
	copy(out.Rows, s.Rows)
	return &out
}

// RowIndex returns the position of the row with the given id, or -1
func (s *SessionState) RowIndex(rowID string) int {
	for i := range s.Rows {
		if s.Rows[i].ID == rowID {
			return i
		}
	}
	return -1
}

// ActiveRows returns the rows that have a crop and at least one seed, in stored order
func (s *SessionState) ActiveRows() []AllocationRow {
	out := make([]AllocationRow, 0, len(s.Rows))
	for _, row := range s.Rows {
		if row.IsActive() {
			out = append(out, row)
		}
	}
	return out
}

// SelectedCount is the number of rows with a crop chosen
func (s *SessionState) SelectedCount() int {
	n := 0
	for _, row := range s.Rows {
		if row.CropName != "" {
			n++
		}
	}
	return n
}
