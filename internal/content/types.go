// Package content holds the editable site content: the entity types, their
// seed data and the in-memory collections the back office mutates. Every
// commit on a collection is written through to the snapshot store.
package content

// Category groups products on the public site.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

// Product is one sellable item inside a category.
// CategoryID is not validated against the categories collection; deleting a
// category leaves its products orphaned rather than cascading.
type Product struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Catalog is a downloadable brochure. FileURL is an opaque link, never
// fetched or validated.
type Catalog struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	FileURL string `json:"fileUrl"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
}

// GalleryImage is one image in the homepage gallery. New images are shown
// most-recent-first.
type GalleryImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// StrengthItem is one entry in the "our strengths" list on the about page.
type StrengthItem struct {
	ID       string `json:"id"`
	IconName string `json:"iconName"`
	Text     string `json:"text"`
}

// SiteSettings is the singleton holding all global site content. It is only
// ever replaced wholesale on save, never patched field by field.
type SiteSettings struct {
	WhatsApp        string `json:"whatsapp"`
	Email           string `json:"email"`
	Facebook        string `json:"facebook"`
	HeadOfficePhone string `json:"headOfficePhone"`
	BranchOnePhone  string `json:"branchOnePhone"`
	BranchTwoPhone  string `json:"branchTwoPhone"`
	AdminPhone      string `json:"adminPhone"`

	HeroBanners []string `json:"heroBanners"`

	AboutText           string `json:"aboutText"`
	AboutImage          string `json:"aboutImage"`
	AboutTextSecondary  string `json:"aboutTextSecondary"`
	AboutImageSecondary string `json:"aboutImageSecondary"`
	StrengthImage       string `json:"strengthImage"`
	ContactImage        string `json:"contactImage"`

	HeaderLogo    string `json:"headerLogo"`
	FooterLogo    string `json:"footerLogo"`
	PoweredByLogo string `json:"poweredByLogo"`

	Strengths []StrengthItem `json:"strengths"`
}

// Clone returns a deep copy so drafts never share slice storage with the
// published snapshot.
func (s SiteSettings) Clone() SiteSettings {
	out := s

	out.HeroBanners = make([]string, len(s.HeroBanners))
	copy(out.HeroBanners, s.HeroBanners)

	out.Strengths = make([]StrengthItem, len(s.Strengths))
	copy(out.Strengths, s.Strengths)

	return out
}
