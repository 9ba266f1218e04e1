package controllers

import (
	"Mergington-Activities/src/metrics"
	"Mergington-Activities/src/models"
	"Mergington-Activities/src/services/activities"
	"Mergington-Activities/src/utils"
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	futils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

var validate = validator.New()

// ActivityController serves the activity registry over HTTP.
type ActivityController struct {
	registry *activities.Registry
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewActivityController(registry *activities.Registry, log *zap.Logger, m *metrics.Metrics) *ActivityController {
	return &ActivityController{registry: registry, log: log, metrics: m}
}

// GetAllActivities godoc
// @Summary      List all activities
// @Description  Returns every activity keyed by name, with its current participants
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (ac *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	return c.JSON(ac.registry.List())
}

// SignupForActivity godoc
// @Summary      Sign up a student for an activity
// @Description  Adds the email to the activity's participants if not already present and a slot remains
// @Tags         activities
// @Produce      json
// @Param        activity_name  path   string  true  "Activity name"
// @Param        email          query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{activity_name}/signup [post]
func (ac *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	// fasthttp reuses the request buffer, so params are copied before they
	// can outlive the request (participant lists, metric labels).
	name, err := url.PathUnescape(futils.CopyString(c.Params("activity_name")))
	if err != nil {
		ac.metrics.ObserveSignup("", metrics.OutcomeNotFound)
		return utils.HandleError(c, fiber.StatusNotFound, activities.ErrActivityNotFound.Error())
	}

	req := models.SignupRequest{
		ActivityName: name,
		Email:        futils.CopyString(c.Query("email")),
	}
	if err := validate.Struct(req); err != nil {
		ac.metrics.ObserveSignup(name, metrics.OutcomeInvalid)
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, validationDetail(err))
	}

	confirmation, err := ac.registry.Signup(req.ActivityName, req.Email)
	if err != nil {
		status, outcome := signupFailure(err)
		ac.metrics.ObserveSignup(req.ActivityName, outcome)
		ac.log.Warn("signup rejected",
			zap.String("activity", req.ActivityName),
			zap.String("email", req.Email),
			zap.String("reason", outcome),
		)
		return utils.HandleError(c, status, err.Error())
	}

	ac.metrics.ObserveSignup(req.ActivityName, metrics.OutcomeSuccess)
	ac.log.Info("signup accepted",
		zap.String("activity", confirmation.Activity),
		zap.String("email", confirmation.Email),
		zap.Int("participants", confirmation.Participants),
	)

	return c.JSON(models.MessageResponse{Message: confirmation.Message()})
}

// signupFailure maps a registry error to its HTTP status and metric outcome.
func signupFailure(err error) (int, string) {
	switch {
	case errors.Is(err, activities.ErrActivityNotFound):
		return fiber.StatusNotFound, metrics.OutcomeNotFound
	case errors.Is(err, activities.ErrAlreadySignedUp):
		return fiber.StatusBadRequest, metrics.OutcomeAlreadySignedUp
	case errors.Is(err, activities.ErrActivityFull):
		return fiber.StatusBadRequest, metrics.OutcomeFull
	default:
		return fiber.StatusInternalServerError, "error"
	}
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Email":
			return "email query parameter is required"
		case "ActivityName":
			return "activity name is required"
		}
	}
	return "Invalid input"
}
