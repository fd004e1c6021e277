package handler

import (
	"net/http"
	"strconv"

	"github.com/minimindteam/Dash/internal/service"
)

// CatalogHandler handles services and packages.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// HandleListServices returns all services in creation order.
// GET /api/services
func (h *CatalogHandler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]serviceDTO, 0, len(services))
	for i := range services {
		dtos = append(dtos, toServiceDTO(&services[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleCreateService adds a service.
// POST /api/services
func (h *CatalogHandler) HandleCreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svc := req.toDomain()
	svc.ID = 0
	if err := h.catalog.CreateService(r.Context(), SessionFromContext(r.Context()), svc); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toServiceDTO(svc))
}

// HandleUpdateService overwrites a service.
// PUT /api/services/{id}
func (h *CatalogHandler) HandleUpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req serviceDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svc := req.toDomain()
	svc.ID = id
	if err := h.catalog.UpdateService(r.Context(), SessionFromContext(r.Context()), svc); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toServiceDTO(svc))
}

// HandleDeleteService removes a service.
// DELETE /api/services/{id}
func (h *CatalogHandler) HandleDeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.catalog.DeleteService(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListPackages returns all packages in creation order.
// GET /api/packages
func (h *CatalogHandler) HandleListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.ListPackages(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]packageDTO, 0, len(packages))
	for i := range packages {
		dtos = append(dtos, toPackageDTO(&packages[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleCreatePackage adds a package.
// POST /api/packages
func (h *CatalogHandler) HandleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var req packageDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pkg := req.toDomain()
	pkg.ID = 0
	if err := h.catalog.CreatePackage(r.Context(), SessionFromContext(r.Context()), pkg); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPackageDTO(pkg))
}

// HandleUpdatePackage overwrites a package.
// PUT /api/packages/{id}
func (h *CatalogHandler) HandleUpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req packageDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pkg := req.toDomain()
	pkg.ID = id
	if err := h.catalog.UpdatePackage(r.Context(), SessionFromContext(r.Context()), pkg); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPackageDTO(pkg))
}

// HandleDeletePackage removes a package.
// DELETE /api/packages/{id}
func (h *CatalogHandler) HandleDeletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.catalog.DeletePackage(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
