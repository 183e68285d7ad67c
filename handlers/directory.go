package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hajz/models"
	"hajz/services/directory"
	"hajz/utils"
)

// DirectoryHandler serves the hospital/clinic/doctor catalogue.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// GetHospitalsHandler lists all hospitals.
func (h *DirectoryHandler) GetHospitalsHandler(c *gin.Context) {
	hospitals, err := h.Service.ListHospitals(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list hospitals", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hospitals", err.Error())
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// CreateHospitalHandler registers a new hospital.
func (h *DirectoryHandler) CreateHospitalHandler(c *gin.Context) {
	var input models.HospitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hospital, err := h.Service.CreateHospital(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create hospital", err.Error())
		return
	}
	c.JSON(http.StatusCreated, hospital)
}

// GetClinicsHandler lists the clinics of one hospital.
func (h *DirectoryHandler) GetClinicsHandler(c *gin.Context) {
	hospitalID := c.Query("hospital_id")
	if hospitalID == "" {
		utils.JSONError(c, http.StatusBadRequest, "hospital_id is required", "")
		return
	}

	clinics, err := h.Service.ListClinics(c.Request.Context(), hospitalID)
	if err != nil {
		getLogger(c).Error("failed to list clinics", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load clinics", err.Error())
		return
	}
	c.JSON(http.StatusOK, clinics)
}

// GetDoctorsHandler lists doctors, optionally filtered by clinic and
// specialty.
func (h *DirectoryHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.ListDoctors(c.Request.Context(), c.Query("clinic_id"), c.Query("specialty"))
	if err != nil {
		getLogger(c).Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}
