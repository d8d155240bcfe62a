package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fitness-booking/internal/dto"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/httpresp"
	"github.com/BruksfildServices01/fitness-booking/internal/middleware"
	ucClass "github.com/BruksfildServices01/fitness-booking/internal/usecase/fitnessclass"
)

type FitnessClassHandler struct {
	create *ucClass.CreateClass
	update *ucClass.UpdateClass
	list   *ucClass.ListClasses
	mine   *ucClass.ListOwnClasses
	remove *ucClass.DeleteClass
}

func NewFitnessClassHandler(
	create *ucClass.CreateClass,
	update *ucClass.UpdateClass,
	list *ucClass.ListClasses,
	mine *ucClass.ListOwnClasses,
	remove *ucClass.DeleteClass,
) *FitnessClassHandler {
	return &FitnessClassHandler{
		create: create,
		update: update,
		list:   list,
		mine:   mine,
		remove: remove,
	}
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// coverFile returns the optional "cover" part of a multipart request.
func coverFile(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("cover")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	return fh, err
}

// bindClassForm parses the multipart form and drops blank parts before
// binding, so an empty numeric part reads as absent instead of zero.
func bindClassForm(c *gin.Context, dst *ucClass.Fields) error {
	form, err := c.MultipartForm()
	if err != nil {
		return err
	}
	for key, values := range form.Value {
		if strings.TrimSpace(strings.Join(values, "")) == "" {
			delete(form.Value, key)
			c.Request.PostForm.Del(key)
			c.Request.Form.Del(key)
		}
	}
	return c.ShouldBind(dst)
}

func (h *FitnessClassHandler) Create(c *gin.Context) {
	var in ucClass.CreateInput

	if isMultipart(c) {
		if err := bindClassForm(c, &in.Fields); err != nil {
			invalidBody(c)
			return
		}
		cover, err := coverFile(c)
		if err != nil {
			invalidBody(c)
			return
		}
		in.Cover = cover
	} else if err := c.ShouldBind(&in.Fields); err != nil {
		invalidBody(c)
		return
	}

	fc, err := h.create.Execute(c.Request.Context(), middleware.MustClaims(c).UserID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Class created successfully",
		"class":   dto.NewFitnessClassDTO(fc),
	})
}

// Update accepts either a JSON body or a multipart form with an optional
// new cover.
func (h *FitnessClassHandler) Update(c *gin.Context) {
	var in ucClass.UpdateInput

	if isMultipart(c) {
		if err := bindClassForm(c, &in.Fields); err != nil {
			invalidBody(c)
			return
		}
		cover, err := coverFile(c)
		if err != nil {
			invalidBody(c)
			return
		}
		in.Cover = cover
	} else if err := bindOptionalJSON(c, &in.Fields); err != nil {
		invalidBody(c)
		return
	}

	fc, err := h.update.Execute(c.Request.Context(), middleware.MustClaims(c).UserID, c.Param("id"), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Class updated",
		"updateClass": dto.NewFitnessClassDTO(fc),
	})
}

func (h *FitnessClassHandler) List(c *gin.Context) {
	classes, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Get all classes successfully",
		"classes": dto.NewFitnessClassDTOs(classes),
	})
}

func (h *FitnessClassHandler) ListMine(c *gin.Context) {
	claims := middleware.MustClaims(c)

	classes, err := h.mine.Execute(c.Request.Context(), claims.UserID, claims.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Get my classes successfully",
		"classes": dto.NewFitnessClassDTOs(classes),
	})
}

func (h *FitnessClassHandler) Delete(c *gin.Context) {
	claims := middleware.MustClaims(c)

	if err := h.remove.Execute(c.Request.Context(), c.Param("id"), claims.UserID, claims.IsAdmin()); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Class deleted successfully"})
}
