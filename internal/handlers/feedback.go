package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/httperr"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
)

// Feedback pairs every response with the notification the front desk
// sees.
type Feedback struct {
	notifier *notify.Notifier
	log      *zap.Logger
}

func NewFeedback(notifier *notify.Notifier, log *zap.Logger) Feedback {
	if log == nil {
		log = zap.NewNop()
	}
	return Feedback{notifier: notifier, log: log}
}

func (f Feedback) success(message string) {
	f.notifier.Success(message)
}

func (f Feedback) fail(c *gin.Context, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		f.notifier.Error(httperr.Message(code))
	} else {
		f.log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		f.notifier.Error("No se pudieron guardar los datos.")
	}
	httperr.FromError(c, err)
}

func (f Feedback) invalidRequest(c *gin.Context) {
	f.fail(c, httperr.ErrBusiness("invalid_request"))
}

// confirmed reads the ?confirm= flag that destructive routes require.
func confirmed(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && ok
}
