package handlers

import (
	"fmt"
	"net/http"

	"review-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

type updateEmployeeRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1"`
	IsAdmin  *bool   `json:"isAdmin"`
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employees.Create(c.Request.Context(), service.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(c.Request.Context(), actor(c), "employee", employee.ID, "create",
		fmt.Sprintf("created employee %s (admin=%t)", employee.Email, employee.IsAdmin))

	c.JSON(http.StatusCreated, employee)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	var req updateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employees.Update(c.Request.Context(), c.Param("id"), service.UpdateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(c.Request.Context(), actor(c), "employee", employee.ID, "update",
		"updated employee "+employee.Email)

	c.JSON(http.StatusOK, employee)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	employee, err := h.employees.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(c.Request.Context(), actor(c), "employee", employee.ID, "delete",
		"deleted employee "+employee.Email)

	c.JSON(http.StatusOK, employee)
}
