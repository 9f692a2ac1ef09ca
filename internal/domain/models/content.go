// internal/domain/models/content.go
package models

// This file holds the fixed marketing copy for the public site. It is
// compiled in rather than stored in Mongo: the copy changes with the
// codebase, not through the admin panel. Admin-managed records (blog
// posts, services, projects) live in their own collections and are
// merged with this content by the public features.

// StaticPost is an editorial article that ships with the site. Static
// posts appear on the blog page ahead of admin-created posts.
type StaticPost struct {
	Slug      string
	Title     string
	Intro     string
	Points    []string
	Highlight string
}

// StaticBlogPosts are the built-in articles, newest first.
var StaticBlogPosts = []StaticPost{
	{
		Slug:  "impact-of-3d-modeling-in-construction",
		Title: "The Impact of 3D Modeling in Construction",
		Intro: "3D modeling has moved from a presentation gimmick to the backbone of modern construction planning. Teams that model before they build catch clashes on screen instead of on site.",
		Points: []string{
			"Design intent is communicated visually, so clients sign off faster and with fewer surprises.",
			"Clash detection between structural, mechanical, and electrical systems happens before materials are ordered.",
			"Quantity take-offs generated from the model keep estimates tied to the actual geometry.",
			"Revisions propagate through the model, keeping drawings and schedules consistent.",
		},
		Highlight: "Projects that adopt model-first workflows routinely report double-digit reductions in rework cost.",
	},
	{
		Slug:  "impact-of-scan-to-bim",
		Title: "The Impact of Scan to BIM on Construction & Renovation",
		Intro: "Laser scanning captures existing conditions in millimetres, and Scan to BIM turns that point cloud into an intelligent model. For renovation work it replaces guesswork with measurement.",
		Points: []string{
			"As-built models reflect what is actually standing, not what the decades-old drawings claim.",
			"Renovation designs are validated against real geometry before demolition begins.",
			"Facility managers inherit a usable digital record of the building.",
		},
		Highlight: "Scan to BIM is the difference between renovating a building and renovating a rumor of a building.",
	},
	{
		Slug:  "luxury-on-a-budget-interior-design",
		Title: "Luxury on a Budget: Affordable Interior Design Tips",
		Intro: "A high-end look is mostly the product of deliberate choices, not expensive ones. A few principles go a long way.",
		Points: []string{
			"Commit to a restrained palette and let texture do the work.",
			"Spend on the pieces you touch every day; save on the ones you only look at.",
			"Lighting layers - ambient, task, accent - transform a room more than any single purchase.",
			"Negative space reads as luxury; clutter reads as compromise.",
		},
		Highlight: "Good design is a sequence of decisions. Budget constrains the options, not the quality of the decisions.",
	},
}

// StaticPostBySlug returns the built-in post with the given slug, or nil.
func StaticPostBySlug(slug string) *StaticPost {
	for i := range StaticBlogPosts {
		if StaticBlogPosts[i].Slug == slug {
			return &StaticBlogPosts[i]
		}
	}
	return nil
}

// Testimonial is a client quote shown on the landing page.
type Testimonial struct {
	Quote string
	Name  string
	Role  string
}

// Testimonials shown on the landing page, in display order.
var Testimonials = []Testimonial{
	{
		Quote: "The BIM models were accurate down to the fixture. Coordination issues we used to find on site, we now find in review meetings.",
		Name:  "Rajesh Mehta",
		Role:  "Project Director, Commercial Developer",
	},
	{
		Quote: "Their scan-to-BIM work on our heritage renovation saved us weeks of survey time and at least one structural surprise.",
		Name:  "Priya Sharma",
		Role:  "Principal Architect",
	},
	{
		Quote: "Clear documents, honest quantities, and renders our buyers actually respond to. They are part of the team now.",
		Name:  "Arun Singhal",
		Role:  "Managing Partner, Residential Builder",
	},
}

// CoreService is a headline service shown in the landing page grid. The
// full, admin-managed catalog lives in the services collection.
type CoreService struct {
	Title   string
	Summary string
}

// CoreServices shown on the landing page.
var CoreServices = []CoreService{
	{Title: "BIM 3D Modeling", Summary: "Coordinated architectural, structural, and MEP models built to your LOD requirements."},
	{Title: "Construction Documents", Summary: "Permit and construction drawing sets produced from the model, kept consistent through revisions."},
	{Title: "Scan to BIM", Summary: "Point clouds converted into accurate as-built models for renovation and facility management."},
	{Title: "3D Renders & Walkthroughs", Summary: "Photorealistic stills and walkthroughs for marketing, approvals, and design review."},
	{Title: "Interior Designing", Summary: "Space planning and interior detailing from concept boards to execution drawings."},
	{Title: "Quantity Take-Off", Summary: "Model-based quantities and BOQs that stay tied to the current design."},
}

// ContactServiceOptions are the choices offered in the contact form's
// service dropdown.
var ContactServiceOptions = []string{
	"BIM 3D Modeling",
	"Construction Documents",
	"Scan to BIM",
	"3D Renders & Walkthroughs",
	"Interior Designing",
	"Quantity Take-Off",
	"General Consultation",
}

// ContactProjectTypes are the choices offered in the contact form's
// project type dropdown.
var ContactProjectTypes = ProjectCategories
