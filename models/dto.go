package models

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Redactor  bool   `json:"redactor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title      string `form:"title" json:"title" binding:"required,min=1,max=200"`
	Content    string `form:"content" json:"content" binding:"required"`
	CategoryID uint   `form:"category_id" json:"category_id" binding:"required"`
}

type UpdateArticleRequest struct {
	Title      string `form:"title" json:"title" binding:"required,min=1,max=200"`
	Content    string `form:"content" json:"content" binding:"required"`
	CategoryID uint   `form:"category_id" json:"category_id" binding:"required"`
}

type CreateSolutionRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	ParentID *uint  `json:"parent_id"`
}

const (
	ActionApprove          = "approve"
	ActionReject           = "reject"
	ActionValidateSolution = "validate_solution"
	ActionRefuseSolution   = "refuse_solution"
)

type ModerationRequest struct {
	Action     string `form:"action" json:"action" binding:"required,oneof=approve reject validate_solution refuse_solution"`
	SolutionID uint   `form:"solution_id" json:"solution_id"`
}

// Validated with the helper's validator rather than gin binding tags.
type UpdateProfileRequest struct {
	Username  string `json:"username" validate:"omitempty,min=3,max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

type SendNoteRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type ArticleDetail struct {
	Article   *Article   `json:"article"`
	Solutions []Solution `json:"solutions"`
	Comments  []Comment  `json:"comments"`
}

type SearchResponse struct {
	Query    string    `json:"query"`
	Results  []Article `json:"results"`
	AIAnswer string    `json:"ai_answer,omitempty"`
}

type HomeResponse struct {
	Articles         []Article `json:"articles"`
	UnseenNotesCount int64     `json:"unseen_notes_count"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
}

type CategoryStat struct {
	CategoryID   uint   `json:"category_id"`
	Name         string `json:"name"`
	ArticleCount int64  `json:"article_count"`
}

type AdminDashboard struct {
	TotalArticles     int64          `json:"total_articles"`
	PublishedArticles int64          `json:"published_articles"`
	PendingArticles   int64          `json:"pending_articles"`
	TotalCategories   int64          `json:"total_categories"`
	TotalUsers        int64          `json:"total_users"`
	PopularArticles   []Article      `json:"popular_articles"`
	ZeroResultQueries []Search       `json:"zero_result_queries"`
	AverageRating     float64        `json:"average_rating"`
	RecentArticles    []Article      `json:"recent_articles"`
	CategoryStats     []CategoryStat `json:"category_stats"`
}

type RedactorDashboard struct {
	TotalArticles     int64     `json:"total_articles"`
	PublishedArticles int64     `json:"published_articles"`
	PendingArticles   int64     `json:"pending_articles"`
	DraftArticles     int64     `json:"draft_articles"`
	RecentArticles    []Article `json:"recent_articles"`
	PopularArticles   []Article `json:"popular_articles"`
}

type ProfilePage struct {
	User        *User       `json:"user"`
	IsAdmin     bool        `json:"is_admin"`
	RecentNotes []AdminNote `json:"recent_notes,omitempty"`
	SentNotes   []AdminNote `json:"sent_notes,omitempty"`
	AllUsers    []User      `json:"all_users,omitempty"`
}
