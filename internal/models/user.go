package models

// UserType identifies which side of the marketplace a user is on
type UserType string

const (
	// TypeFreelancer is a student freelancer offering work
	TypeFreelancer UserType = "freelancer"

	// TypeClient is a client posting projects
	TypeClient UserType = "client"
)

// User represents a marketplace participant. Type is immutable once set;
// Freelancer is populated only for freelancer users and ignored for clients.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Type     UserType `json:"type"`
	Verified bool     `json:"verified,omitempty"`
	IsOnline bool     `json:"is_online,omitempty"`
	Avatar   string   `json:"avatar,omitempty"`

	Freelancer *FreelancerProfile `json:"freelancer,omitempty"`
}

// FreelancerProfile holds the freelancer-only attributes of a user
type FreelancerProfile struct {
	University        string         `json:"university,omitempty"`
	Skills            []string       `json:"skills,omitempty"`
	Endorsements      map[string]int `json:"endorsements,omitempty"`
	Rating            float64        `json:"rating,omitempty"`
	CompletedProjects int            `json:"completed_projects,omitempty"`
	Bio               string         `json:"bio,omitempty"`
	Portfolio         []Project      `json:"portfolio,omitempty"`
}

// IsFreelancer reports whether the user is on the freelancer side
func (u *User) IsFreelancer() bool {
	return u.Type == TypeFreelancer
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Freelancer != nil {
		fp := *u.Freelancer
		fp.Skills = append([]string(nil), u.Freelancer.Skills...)
		fp.Portfolio = append([]Project(nil), u.Freelancer.Portfolio...)
		if u.Freelancer.Endorsements != nil {
			fp.Endorsements = make(map[string]int, len(u.Freelancer.Endorsements))
			for skill, count := range u.Freelancer.Endorsements {
				fp.Endorsements[skill] = count
			}
		}
		out.Freelancer = &fp
	}
	return &out
}
