package handlers

import (
	"io"
	"net/http"

	"seller_panel/internal/models"
	"seller_panel/internal/services"

	"github.com/gin-gonic/gin"
)

// profileFileFields are the upload slots the profile screen exposes. Only
// parts the operator actually attached are forwarded.
var profileFileFields = []string{
	"company_logo",
	"aadhar_front",
	"aadhar_back",
	"company_registration",
	"company_pan_card",
	"gst_certificate",
	"cancelled_cheque_photo",
}

type SellerHandler struct {
	profileService services.ProfileService
	packageService services.PackageService
	dashboard      services.DashboardService
}

func NewSellerHandler(
	profileService services.ProfileService,
	packageService services.PackageService,
	dashboard services.DashboardService,
) *SellerHandler {
	return &SellerHandler{
		profileService: profileService,
		packageService: packageService,
		dashboard:      dashboard,
	}
}

func (h *SellerHandler) GetProfile(c *gin.Context) {
	user := CurrentUser(c)

	profile, form, err := h.profileService.Profile(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "form": form})
}

// SaveProfile accepts multipart form data: the flat text fields plus any
// changed file uploads.
func (h *SellerHandler) SaveProfile(c *gin.Context) {
	var form models.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	files, err := collectProfileFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}

	user := CurrentUser(c)
	saved, err := h.profileService.Save(c.Request.Context(), user.ID, form, files)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": saved})
}

func collectProfileFiles(c *gin.Context) ([]models.FileAttachment, error) {
	var files []models.FileAttachment
	for _, field := range profileFileFields {
		header, err := c.FormFile(field)
		if err != nil {
			continue
		}
		src, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, models.FileAttachment{
			Field:    field,
			Filename: header.Filename,
			Data:     data,
		})
	}
	return files, nil
}

func (h *SellerHandler) PackageHistory(c *gin.Context) {
	user := CurrentUser(c)

	history, err := h.packageService.History(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch package history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *SellerHandler) Dashboard(c *gin.Context) {
	user := CurrentUser(c)

	stats, err := h.dashboard.Stats(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch dashboard"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Sections returns the navigation entries available to the seller. Pending
// sellers only see enough to complete their profile and track their plan.
func (h *SellerHandler) Sections(c *gin.Context) {
	user := CurrentUser(c)

	sections := []string{"profile", "package-history"}
	if user.IsApproved() {
		sections = []string{"dashboard", "orders", "stock", "profile", "package-history"}
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections, "approved": user.IsApproved()})
}
