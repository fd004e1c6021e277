package handler

import (
	"time"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/editor"
)

// Wire types mirror the JSON the dashboard and public site exchange.
// Field names are part of the API contract and never change casually.

type homeContentDTO struct {
	ID              int64  `json:"id"`
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
	HeroDescription string `json:"hero_description"`
	CTATitle        string `json:"cta_title"`
	CTASubtitle     string `json:"cta_subtitle"`
}

type heroImageDTO struct {
	ID           int64     `json:"id"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type homeStatDTO struct {
	ID           int64     `json:"id"`
	Number       string    `json:"number"`
	Label        string    `json:"label"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type servicePreviewDTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type homePageDTO struct {
	Content         homeContentDTO      `json:"content"`
	HeroImages      []heroImageDTO      `json:"hero_images"`
	Stats           []homeStatDTO       `json:"stats"`
	ServicesPreview []servicePreviewDTO `json:"services_preview"`
}

func toHomePageDTO(page *domain.HomePage) homePageDTO {
	dto := homePageDTO{
		Content: homeContentDTO{
			ID:              page.Content.ID,
			HeroTitle:       page.Content.HeroTitle,
			HeroSubtitle:    page.Content.HeroSubtitle,
			HeroDescription: page.Content.HeroDescription,
			CTATitle:        page.Content.CTATitle,
			CTASubtitle:     page.Content.CTASubtitle,
		},
		HeroImages:      []heroImageDTO{},
		Stats:           []homeStatDTO{},
		ServicesPreview: []servicePreviewDTO{},
	}
	for _, img := range page.HeroImages {
		dto.HeroImages = append(dto.HeroImages, heroImageDTO{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			DisplayOrder: img.DisplayOrder,
			CreatedAt:    img.CreatedAt,
		})
	}
	for _, s := range page.Stats {
		dto.Stats = append(dto.Stats, homeStatDTO{
			ID:           s.ID,
			Number:       s.Number,
			Label:        s.Label,
			Icon:         s.Icon,
			DisplayOrder: s.DisplayOrder,
			CreatedAt:    s.CreatedAt,
		})
	}
	for _, p := range page.ServicesPreview {
		dto.ServicesPreview = append(dto.ServicesPreview, servicePreviewDTO{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			ImageURL:     p.ImageURL,
			DisplayOrder: p.DisplayOrder,
			CreatedAt:    p.CreatedAt,
		})
	}
	return dto
}

// Save request types. Images may be an existing URL or an inline file
// (bytes arrive base64-encoded by encoding/json).

type pendingFileDTO struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type imageSourceDTO struct {
	ID   int64           `json:"id"`
	Type string          `json:"type"`
	URL  string          `json:"url"`
	File *pendingFileDTO `json:"file"`
}

type saveStatDTO struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
}

type saveServicePreviewDTO struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       imageSourceDTO `json:"image"`
}

type saveHomePageRequest struct {
	Content         homeContentDTO          `json:"content"`
	HeroImages      []imageSourceDTO        `json:"hero_images"`
	Stats           []saveStatDTO           `json:"stats"`
	ServicesPreview []saveServicePreviewDTO `json:"services_preview"`
}

func (req *saveHomePageRequest) toDraft() *editor.Draft {
	draft := &editor.Draft{
		Content: domain.HomeContent{
			ID:              req.Content.ID,
			HeroTitle:       req.Content.HeroTitle,
			HeroSubtitle:    req.Content.HeroSubtitle,
			HeroDescription: req.Content.HeroDescription,
			CTATitle:        req.Content.CTATitle,
			CTASubtitle:     req.Content.CTASubtitle,
		},
	}
	for _, img := range req.HeroImages {
		draft.HeroImages = append(draft.HeroImages, toImageSource(img))
	}
	for _, s := range req.Stats {
		draft.Stats = append(draft.Stats, editor.Stat{
			ItemID: s.ID,
			Number: s.Number,
			Label:  s.Label,
			Icon:   s.Icon,
		})
	}
	for _, p := range req.ServicesPreview {
		draft.ServicesPreview = append(draft.ServicesPreview, editor.ServicePreview{
			ItemID:      p.ID,
			Title:       p.Title,
			Description: p.Description,
			Image:       toImageSource(p.Image),
		})
	}
	return draft
}

func toImageSource(dto imageSourceDTO) editor.ImageSource {
	src := editor.ImageSource{
		ItemID: dto.ID,
		Type:   editor.SourceURL,
		URL:    dto.URL,
	}
	if dto.Type == string(editor.SourceFile) && dto.File != nil {
		src.Type = editor.SourceFile
		src.File = &editor.PendingFile{
			Name:        dto.File.Name,
			ContentType: dto.File.ContentType,
			Data:        dto.File.Data,
		}
	}
	return src
}

type messageDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	ReceivedAt time.Time `json:"received_at"`
}

func toMessageDTO(msg *domain.ContactMessage) messageDTO {
	return messageDTO{
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		IsRead:     msg.Read,
		ReceivedAt: msg.ReceivedAt,
	}
}

type messageReplyDTO struct {
	ID             int64     `json:"id"`
	RecipientEmail string    `json:"recipient_email"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

func toMessageReplyDTO(reply *domain.MessageReply) messageReplyDTO {
	return messageReplyDTO{
		ID:             reply.ID,
		RecipientEmail: reply.RecipientEmail,
		Subject:        reply.Subject,
		Body:           reply.Body,
		SentAt:         reply.SentAt,
	}
}

type orderDTO struct {
	OrderID      string    `json:"order_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company"`
	Message      string    `json:"message"`
	Budget       string    `json:"budget"`
	Timeline     string    `json:"timeline"`
	PackageName  string    `json:"package_name"`
	PackagePrice string    `json:"package_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func toOrderDTO(order *domain.Order) orderDTO {
	return orderDTO{
		OrderID:      order.OrderID,
		Name:         order.Name,
		Email:        order.Email,
		Phone:        order.Phone,
		Company:      order.Company,
		Message:      order.Message,
		Budget:       order.Budget,
		Timeline:     order.Timeline,
		PackageName:  order.PackageName,
		PackagePrice: order.PackagePrice,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
}

type teamMemberDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	ImageURL    string    `json:"image_url"`
	Bio         string    `json:"bio"`
	Specialties []string  `json:"specialties"`
	SocialURLA  string    `json:"social_url_a"`
	SocialURLB  string    `json:"social_url_b"`
	SocialURLC  string    `json:"social_url_c"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTeamMemberDTO(m *domain.TeamMember) teamMemberDTO {
	return teamMemberDTO{
		ID:          m.ID,
		Name:        m.Name,
		Designation: m.Designation,
		ImageURL:    m.ImageURL,
		Bio:         m.Bio,
		Specialties: emptyIfNil(m.Specialties),
		SocialURLA:  m.SocialURLA,
		SocialURLB:  m.SocialURLB,
		SocialURLC:  m.SocialURLC,
		CreatedAt:   m.CreatedAt,
	}
}

func (dto *teamMemberDTO) toDomain() *domain.TeamMember {
	return &domain.TeamMember{
		ID:          dto.ID,
		Name:        dto.Name,
		Designation: dto.Designation,
		ImageURL:    dto.ImageURL,
		Bio:         dto.Bio,
		Specialties: dto.Specialties,
		SocialURLA:  dto.SocialURLA,
		SocialURLB:  dto.SocialURLB,
		SocialURLC:  dto.SocialURLC,
	}
}

type reviewDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Company     string    `json:"company"`
	CompanyURL  string    `json:"company_url"`
	Project     string    `json:"project"`
	Rating      int       `json:"rating"`
	Review      string    `json:"review"`
	ImageURL    string    `json:"image_url"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
}

func toReviewDTO(r *domain.Review) reviewDTO {
	return reviewDTO{
		ID:          r.ID,
		Name:        r.Name,
		Designation: r.Designation,
		Company:     r.Company,
		CompanyURL:  r.CompanyURL,
		Project:     r.Project,
		Rating:      r.Rating,
		Review:      r.Review,
		ImageURL:    r.ImageURL,
		Approved:    r.Approved,
		CreatedAt:   r.CreatedAt,
	}
}

func (dto *reviewDTO) toDomain() *domain.Review {
	return &domain.Review{
		ID:          dto.ID,
		Name:        dto.Name,
		Designation: dto.Designation,
		Company:     dto.Company,
		CompanyURL:  dto.CompanyURL,
		Project:     dto.Project,
		Rating:      dto.Rating,
		Review:      dto.Review,
		ImageURL:    dto.ImageURL,
		Approved:    dto.Approved,
	}
}

type reviewsStatDTO struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
}

type portfolioProjectDTO struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	ProjectImages []string  `json:"project_images"`
	CategoryName  string    `json:"category_name"`
	AspectRatio   string    `json:"aspect_ratio"`
	Technologies  []string  `json:"technologies"`
	URL           string    `json:"url"`
	GithubURL     string    `json:"github_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func toPortfolioProjectDTO(p *domain.PortfolioProject) portfolioProjectDTO {
	return portfolioProjectDTO{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		ProjectImages: emptyIfNil(p.ProjectImages),
		CategoryName:  p.CategoryName,
		AspectRatio:   p.AspectRatio,
		Technologies:  emptyIfNil(p.Technologies),
		URL:           p.URL,
		GithubURL:     p.GithubURL,
		CreatedAt:     p.CreatedAt,
	}
}

func (dto *portfolioProjectDTO) toDomain() *domain.PortfolioProject {
	return &domain.PortfolioProject{
		ID:            dto.ID,
		Title:         dto.Title,
		Description:   dto.Description,
		ImageURL:      dto.ImageURL,
		ProjectImages: dto.ProjectImages,
		CategoryName:  dto.CategoryName,
		AspectRatio:   dto.AspectRatio,
		Technologies:  dto.Technologies,
		URL:           dto.URL,
		GithubURL:     dto.GithubURL,
	}
}

type serviceDTO struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Price         string    `json:"price"`
	Features      []string  `json:"features"`
	CoverImageURL string    `json:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func toServiceDTO(s *domain.Service) serviceDTO {
	return serviceDTO{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		Icon:          s.Icon,
		Price:         s.Price,
		Features:      emptyIfNil(s.Features),
		CoverImageURL: s.CoverImageURL,
		CreatedAt:     s.CreatedAt,
	}
}

func (dto *serviceDTO) toDomain() *domain.Service {
	return &domain.Service{
		ID:            dto.ID,
		Title:         dto.Title,
		Description:   dto.Description,
		Icon:          dto.Icon,
		Price:         dto.Price,
		Features:      dto.Features,
		CoverImageURL: dto.CoverImageURL,
	}
}

type packageDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Features    []string  `json:"features"`
	IsPopular   bool      `json:"is_popular"`
	Duration    string    `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPackageDTO(p *domain.Package) packageDTO {
	return packageDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Features:    emptyIfNil(p.Features),
		IsPopular:   p.IsPopular,
		Duration:    p.Duration,
		CreatedAt:   p.CreatedAt,
	}
}

func (dto *packageDTO) toDomain() *domain.Package {
	return &domain.Package{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Price:       dto.Price,
		Features:    dto.Features,
		IsPopular:   dto.IsPopular,
		Duration:    dto.Duration,
	}
}

type contactInfoDTO struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	BusinessHours string `json:"business_hours"`
	Facebook      string `json:"facebook"`
	Twitter       string `json:"twitter"`
	LinkedIn      string `json:"linkedin"`
	Instagram     string `json:"instagram"`
}

func toContactInfoDTO(info *domain.ContactInfo) contactInfoDTO {
	return contactInfoDTO{
		ID:            info.ID,
		Email:         info.Email,
		Phone:         info.Phone,
		Address:       info.Address,
		BusinessHours: info.BusinessHours,
		Facebook:      info.Facebook,
		Twitter:       info.Twitter,
		LinkedIn:      info.LinkedIn,
		Instagram:     info.Instagram,
	}
}

type storedImageDTO struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"storage_key"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

// emptyIfNil keeps list fields rendering as [] instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
