package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/linguaclass/b1dialog-backend/internal/services"
)

// RespondOK writes the uniform success envelope: {ok:true, ...payload}.
func RespondOK(c *gin.Context, payload gin.H) {
  body := gin.H{"ok": true}
  for k, v := range payload {
    body[k] = v
  }
  c.JSON(http.StatusOK, body)
}

// RespondError writes the uniform failure envelope: {ok:false, error:...}.
func RespondError(c *gin.Context, status int, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, gin.H{"ok": false, "error": msg})
}

// RespondServiceError maps service-level errors to the HTTP taxonomy:
// validation 400, missing session 404, double submission 409, everything
// else 500.
func RespondServiceError(c *gin.Context, err error) {
  var validationErr *services.ValidationError
  switch {
  case errors.As(err, &validationErr):
    RespondError(c, http.StatusBadRequest, err)
  case errors.Is(err, services.ErrSessionNotFound):
    RespondError(c, http.StatusNotFound, err)
  case errors.Is(err, services.ErrAlreadyCompleted):
    RespondError(c, http.StatusConflict, err)
  default:
    RespondError(c, http.StatusInternalServerError, err)
  }
}
