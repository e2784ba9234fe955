package services

import "time"

// Input DTOs. Pointer fields distinguish omitted from present: a nil
// collection pointer leaves the stored collection untouched, a non-nil
// pointer (even to an empty slice) replaces it wholesale.

type ContactInput struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type FileInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type MilestoneInput struct {
	Label    string   `json:"label"`
	Amount   float64  `json:"amount"`
	Status   *string  `json:"status,omitempty"`
	Approved *bool    `json:"approved,omitempty"`
	DueDate  *string  `json:"due_date,omitempty"`
}

type MilestoneUpdateInput struct {
	Label    *string  `json:"label,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Status   *string  `json:"status,omitempty"`
	Approved *bool    `json:"approved,omitempty"`
	DueDate  *string  `json:"due_date,omitempty"`
}

type MaterialInput struct {
	Type     string  `json:"type"`
	Brand    *string `json:"brand,omitempty"`
	Quantity *string `json:"quantity,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type DesignInput struct {
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
}

type MediaInput struct {
	Kind    string  `json:"kind"`
	URL     string  `json:"url"`
	Caption *string `json:"caption,omitempty"`
}

type ClosureInput struct {
	FinalMedia   *[]MediaInput `json:"final_media,omitempty"`
	Certificate  *FileInput    `json:"certificate,omitempty"`
	Warranty     *FileInput    `json:"warranty,omitempty"`
	AfterSales   *ContactInput `json:"after_sales,omitempty"`
	HandoverDate *string       `json:"handover_date,omitempty"`
	FollowUpDate *string       `json:"follow_up_date,omitempty"`
}

type ProjectCreateInput struct {
	Code         *string  `json:"code,omitempty"`
	Address      string   `json:"address"`
	Type         string   `json:"type"`
	Status       *string  `json:"status,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	ETA          *string  `json:"eta,omitempty"`
	SitePhotoURL *string  `json:"site_photo_url,omitempty"`
	Discount     *float64 `json:"discount,omitempty"`
	ExtraCharge  *float64 `json:"extra_charge,omitempty"`

	Salesperson   *ContactInput `json:"salesperson,omitempty"`
	Designer      *ContactInput `json:"designer,omitempty"`
	Contractor    *ContactInput `json:"contractor,omitempty"`
	QuotationFile *FileInput    `json:"quotation_file,omitempty"`

	Milestones *[]MilestoneInput `json:"milestones,omitempty"`
	Materials  *[]MaterialInput  `json:"materials,omitempty"`
	Designs    *[]DesignInput    `json:"designs,omitempty"`
	Media      *[]MediaInput     `json:"media,omitempty"`
	Invoices   *[]FileInput      `json:"invoices,omitempty"`
	Permits    *[]FileInput      `json:"permits,omitempty"`
	SignOffs   *[]FileInput      `json:"sign_offs,omitempty"`

	Closure *ClosureInput `json:"closure,omitempty"`
}

type ProjectUpdateInput struct {
	Address      *string  `json:"address,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Status       *string  `json:"status,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	ETA          *string  `json:"eta,omitempty"`
	SitePhotoURL *string  `json:"site_photo_url,omitempty"`
	Discount     *float64 `json:"discount,omitempty"`
	ExtraCharge  *float64 `json:"extra_charge,omitempty"`

	Salesperson   *ContactInput `json:"salesperson,omitempty"`
	Designer      *ContactInput `json:"designer,omitempty"`
	Contractor    *ContactInput `json:"contractor,omitempty"`
	QuotationFile *FileInput    `json:"quotation_file,omitempty"`

	Milestones *[]MilestoneInput `json:"milestones,omitempty"`
	Materials  *[]MaterialInput  `json:"materials,omitempty"`
	Designs    *[]DesignInput    `json:"designs,omitempty"`
	Media      *[]MediaInput     `json:"media,omitempty"`
	Invoices   *[]FileInput      `json:"invoices,omitempty"`
	Permits    *[]FileInput      `json:"permits,omitempty"`
	SignOffs   *[]FileInput      `json:"sign_offs,omitempty"`

	Closure *ClosureInput `json:"closure,omitempty"`
}

type ProjectListFilters struct {
	Status        string
	Type          string
	Query         string
	StartDateFrom string
	StartDateTo   string
	ETAFrom       string
	ETATo         string
}

// Output projection. Dates cross the boundary as YYYY-MM-DD strings and
// enums as canonical labels; internal codes never leave the service.

type ContactView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type FileView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type MilestoneView struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Approved bool    `json:"approved"`
	DueDate  *string `json:"due_date,omitempty"`
}

type MaterialView struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Brand    string  `json:"brand,omitempty"`
	Quantity string  `json:"quantity,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type DesignView struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

type MediaView struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type ClosureView struct {
	FinalMedia   []MediaView  `json:"final_media"`
	Certificate  *FileView    `json:"certificate,omitempty"`
	Warranty     *FileView    `json:"warranty,omitempty"`
	AfterSales   *ContactView `json:"after_sales,omitempty"`
	HandoverDate *string      `json:"handover_date,omitempty"`
	FollowUpDate *string      `json:"follow_up_date,omitempty"`
}

type ProjectView struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Address      string  `json:"address"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	StartDate    *string `json:"start_date,omitempty"`
	ETA          *string `json:"eta,omitempty"`
	SitePhotoURL string  `json:"site_photo_url,omitempty"`
	Discount     float64 `json:"discount"`
	ExtraCharge  float64 `json:"extra_charge"`

	Salesperson   *ContactView `json:"salesperson,omitempty"`
	Designer      *ContactView `json:"designer,omitempty"`
	Contractor    *ContactView `json:"contractor,omitempty"`
	QuotationFile *FileView    `json:"quotation_file,omitempty"`

	Milestones []MilestoneView `json:"milestones"`
	Materials  []MaterialView  `json:"materials"`
	Designs    []DesignView    `json:"designs"`
	Media      []MediaView     `json:"media"`
	Invoices   []FileView      `json:"invoices"`
	Permits    []FileView      `json:"permits"`
	SignOffs   []FileView      `json:"sign_offs"`

	Closure *ClosureView `json:"closure,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectPage struct {
	Items      []*ProjectView `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}
