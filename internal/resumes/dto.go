package resumes

import "time"

// CreateResponse is the payload returned after a successful create.
type CreateResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListItem is the outward-facing projection of one list entry.
type ListItem struct {
	ID           string           `json:"id"`
	PersonalInfo ListPersonalInfo `json:"personalInfo"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ListPersonalInfo carries only the identity fields projected into lists.
type ListPersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Pagination describes one page of list results.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ListResponse is the envelope returned by the list operation.
type ListResponse struct {
	Success    bool       `json:"success"`
	Data       []ListItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func toListItem(s Summary) ListItem {
	return ListItem{
		ID: s.ID,
		PersonalInfo: ListPersonalInfo{
			FullName: s.FullName,
			Email:    s.Email,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
