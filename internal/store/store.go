package store

import (
	"strconv"
	"sync"
	"time"

	"hivemarket/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// deadlineLayouts are the accepted forms for creation input deadlines
var deadlineLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006"}

// Store is the single source of truth for users, projects and the chat
// log. Every mutation goes through a Store operation; reads hand out
// deep copies, so references held by already-rendered views stay valid
// snapshots and never observe later mutations.
type Store struct {
	mu       sync.Mutex
	users    []*models.User
	projects []*models.Project
	messages []*models.ChatMessage
	validate *validator.Validate
}

// New creates an empty store
func New() *Store {
	return &Store{
		validate: validator.New(),
	}
}

// NewSeeded creates a store preloaded with the demo marketplace data
func NewSeeded() *Store {
	s := New()
	s.users = seedUsers()
	s.projects = seedProjects()
	return s
}

// CreateProjectInput is the raw creation form input. Budget and Deadline
// arrive as text and are coerced during creation.
type CreateProjectInput struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Skills      []string `validate:"-"`
	Budget      string   `validate:"required"`
	Deadline    string   `validate:"required"`
}

// CreateProject validates the input, assigns a fresh id and prepends the
// new open project to the collection. Most-recent-first ordering of
// Projects() is part of the contract. The author must be a client.
func (s *Store) CreateProject(input CreateProjectInput, authorUserID string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.findUser(authorUserID)
	if author == nil {
		return nil, &models.NotFoundError{Kind: "user", ID: authorUserID}
	}
	if author.Type != models.TypeClient {
		return nil, &models.ValidationError{Field: "author", Reason: "only clients can post projects"}
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, &models.ValidationError{Field: "input", Reason: err.Error()}
	}

	budget, err := strconv.ParseFloat(input.Budget, 64)
	if err != nil {
		return nil, &models.ValidationError{Field: "budget", Reason: "not a number"}
	}
	if budget <= 0 {
		return nil, &models.ValidationError{Field: "budget", Reason: "must be positive"}
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, &models.ValidationError{Field: "deadline", Reason: "not a recognizable date"}
	}

	project := &models.Project{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Skills:      append([]string(nil), input.Skills...),
		Budget:      budget,
		Deadline:    deadline,
		Status:      models.StatusOpen,
		ClientID:    author.ID,
		Bids:        []models.Bid{},
		CreatedAt:   time.Now(),
	}

	s.projects = append([]*models.Project{project}, s.projects...)
	return project.Clone(), nil
}

// SubmitBidInput is the bid form input
type SubmitBidInput struct {
	ProjectID    string `validate:"required"`
	FreelancerID string `validate:"required"`
	Message      string
	Amount       float64
	IsQuickBid   bool
}

// SubmitBid appends a bid to an open project. The bidder must be a
// freelancer and the amount positive.
func (s *Store) SubmitBid(input SubmitBidInput) (*models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate.Struct(input); err != nil {
		return nil, &models.ValidationError{Field: "input", Reason: err.Error()}
	}
	if input.Amount <= 0 {
		return nil, &models.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	idx := s.findProjectIndex(input.ProjectID)
	if idx < 0 {
		return nil, &models.NotFoundError{Kind: "project", ID: input.ProjectID}
	}
	project := s.projects[idx]
	if project.Status != models.StatusOpen {
		return nil, &models.InvalidStateError{ProjectID: project.ID, Status: project.Status, Op: "bid on"}
	}

	bidder := s.findUser(input.FreelancerID)
	if bidder == nil {
		return nil, &models.NotFoundError{Kind: "user", ID: input.FreelancerID}
	}
	if !bidder.IsFreelancer() {
		return nil, &models.ValidationError{Field: "freelancer", Reason: "only freelancers can bid"}
	}

	bid := models.Bid{
		ID:           uuid.NewString(),
		FreelancerID: bidder.ID,
		ProjectID:    project.ID,
		Message:      input.Message,
		Amount:       input.Amount,
		IsQuickBid:   input.IsQuickBid,
		SubmittedAt:  time.Now(),
	}

	updated := project.Clone()
	updated.Bids = append(updated.Bids, bid)
	s.projects[idx] = updated
	return &bid, nil
}

// AcceptBid moves an open project to in-progress and assigns the
// freelancer. This is the only transition out of open the store drives;
// a second call on the same project fails with InvalidStateError and
// leaves the first assignment untouched.
func (s *Store) AcceptBid(projectID, freelancerID string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProjectIndex(projectID)
	if idx < 0 {
		return nil, &models.NotFoundError{Kind: "project", ID: projectID}
	}
	project := s.projects[idx]
	if project.Status != models.StatusOpen {
		return nil, &models.InvalidStateError{ProjectID: project.ID, Status: project.Status, Op: "accept a bid on"}
	}

	freelancer := s.findUser(freelancerID)
	if freelancer == nil {
		return nil, &models.NotFoundError{Kind: "user", ID: freelancerID}
	}
	if !freelancer.IsFreelancer() {
		return nil, &models.ValidationError{Field: "freelancer", Reason: "assignee must be a freelancer"}
	}

	updated := project.Clone()
	updated.Status = models.StatusInProgress
	updated.FreelancerID = freelancer.ID
	s.projects[idx] = updated
	return updated.Clone(), nil
}

// ReportProgress records progress on an in-progress project. Driven by
// an external progress-reporting collaborator, not by the core flows.
func (s *Store) ReportProgress(projectID string, progress int, note string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if progress < 0 || progress > 100 {
		return nil, &models.ValidationError{Field: "progress", Reason: "must be between 0 and 100"}
	}

	idx := s.findProjectIndex(projectID)
	if idx < 0 {
		return nil, &models.NotFoundError{Kind: "project", ID: projectID}
	}
	project := s.projects[idx]
	if project.Status != models.StatusInProgress {
		return nil, &models.InvalidStateError{ProjectID: project.ID, Status: project.Status, Op: "report progress on"}
	}

	updated := project.Clone()
	updated.Progress = progress
	updated.LastUpdate = note
	s.projects[idx] = updated
	return updated.Clone(), nil
}

// RegisterUser adds a user to the store. The id must be unique; an empty
// id gets a fresh one.
func (s *Store) RegisterUser(user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Type != models.TypeFreelancer && user.Type != models.TypeClient {
		return nil, &models.ValidationError{Field: "type", Reason: "unknown user type"}
	}
	added := user.Clone()
	if added.ID == "" {
		added.ID = uuid.NewString()
	}
	if s.findUser(added.ID) != nil {
		return nil, &models.ValidationError{Field: "id", Reason: "already registered"}
	}
	s.users = append(s.users, added)
	return added.Clone(), nil
}

// UpdateUser replaces a user record, as the profile builder does. The
// user's type is immutable.
func (s *Store) UpdateUser(user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.users {
		if existing.ID == user.ID {
			if existing.Type != user.Type {
				return nil, &models.ValidationError{Field: "type", Reason: "user type is immutable"}
			}
			updated := user.Clone()
			s.users[i] = updated
			return updated.Clone(), nil
		}
	}
	return nil, &models.NotFoundError{Kind: "user", ID: user.ID}
}

// SendMessage appends a chat message between two existing users
func (s *Store) SendMessage(senderID, receiverID, content, emoji string) (*models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUser(senderID) == nil {
		return nil, &models.NotFoundError{Kind: "user", ID: senderID}
	}
	if s.findUser(receiverID) == nil {
		return nil, &models.NotFoundError{Kind: "user", ID: receiverID}
	}
	if content == "" && emoji == "" {
		return nil, &models.ValidationError{Field: "content", Reason: "message is empty"}
	}

	msg := &models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Emoji:      emoji,
		Timestamp:  time.Now(),
	}
	s.messages = append(s.messages, msg)
	out := *msg
	return &out, nil
}

// Projects returns a snapshot of all projects, most recent first
func (s *Store) Projects() []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// ProjectsByClient returns a snapshot of the projects owned by a client
func (s *Store) ProjectsByClient(clientID string) []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Project
	for _, p := range s.projects {
		if p.ClientID == clientID {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ProjectByID returns a snapshot of one project
func (s *Store) ProjectByID(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProjectIndex(id)
	if idx < 0 {
		return nil, &models.NotFoundError{Kind: "project", ID: id}
	}
	return s.projects[idx].Clone(), nil
}

// Users returns a snapshot of all users
func (s *Store) Users() []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// UserByID returns a snapshot of one user
func (s *Store) UserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(id)
	if u == nil {
		return nil, &models.NotFoundError{Kind: "user", ID: id}
	}
	return u.Clone(), nil
}

// MessagesBetween returns the chat history linking two users, oldest first
func (s *Store) MessagesBetween(a, b string) []*models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.ChatMessage
	for _, m := range s.messages {
		if m.Between(a, b) {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out
}

func (s *Store) findUser(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) findProjectIndex(id string) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func parseDeadline(raw string) (time.Time, error) {
	var err error
	for _, layout := range deadlineLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
