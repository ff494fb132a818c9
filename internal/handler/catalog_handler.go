package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/models"
	"github.com/planet-detroit/civic-action-api/internal/service"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

// CatalogHandler exposes the read-only civic catalog the builder
// searches against.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func catalogFilter(c *gin.Context) models.CatalogFilter {
	var filter models.CatalogFilter
	filter.Agency = strings.TrimSpace(c.Query("agency"))
	filter.Search = strings.TrimSpace(c.Query("search"))
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	return filter
}

func catalogPagination(filter models.CatalogFilter, total int) *models.Pagination {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}

// Meetings godoc
// @Summary List upcoming meetings
// @Tags Catalog
// @Produce json
// @Param agency query string false "Filter by agency"
// @Param search query string false "Search title and agency"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /meetings [get]
func (h *CatalogHandler) Meetings(c *gin.Context) {
	filter := catalogFilter(c)
	meetings, total, err := h.catalog.ListMeetings(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meetings, catalogPagination(filter, total))
}

// CommentPeriods godoc
// @Summary List open comment periods
// @Tags Catalog
// @Produce json
// @Param agency query string false "Filter by agency"
// @Param search query string false "Search title and agency"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /comment-periods [get]
func (h *CatalogHandler) CommentPeriods(c *gin.Context) {
	filter := catalogFilter(c)
	periods, total, err := h.catalog.ListCommentPeriods(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, periods, catalogPagination(filter, total))
}

// Officials godoc
// @Summary List elected officials
// @Tags Catalog
// @Produce json
// @Param search query string false "Search name, office, and district"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /officials [get]
func (h *CatalogHandler) Officials(c *gin.Context) {
	filter := catalogFilter(c)
	officials, total, err := h.catalog.ListOfficials(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, officials, catalogPagination(filter, total))
}

// Organizations godoc
// @Summary List civic organizations
// @Tags Catalog
// @Produce json
// @Param search query string false "Search by name"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /organizations [get]
func (h *CatalogHandler) Organizations(c *gin.Context) {
	filter := catalogFilter(c)
	orgs, total, err := h.catalog.ListOrganizations(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, orgs, catalogPagination(filter, total))
}

// SuggestAgencies godoc
// @Summary Suggest agencies for issue tags
// @Description Maps analyzer issue tags to the agencies holding the relevant public process
// @Tags Catalog
// @Produce json
// @Param issues query string true "Comma-separated issue tags"
// @Success 200 {object} response.Envelope
// @Router /suggestions/agencies [get]
func (h *CatalogHandler) SuggestAgencies(c *gin.Context) {
	var issues []string
	for _, issue := range strings.Split(c.Query("issues"), ",") {
		if trimmed := strings.TrimSpace(issue); trimmed != "" {
			issues = append(issues, trimmed)
		}
	}
	response.JSON(c, http.StatusOK, h.catalog.SuggestAgencies(issues), nil)
}
