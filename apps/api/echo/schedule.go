package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
)

type scheduleApi struct {
	svc      *schedule.Service
	validate *validator.Validate
}

func registerScheduleAPI(g *echo.Group, deps *Deps) {
	api := scheduleApi{
		svc:      deps.ScheduleSvc,
		validate: deps.Validate,
	}

	sg := g.Group("/schedule")

	sg.POST("/upload", api.upload)
	sg.GET("/events", api.queryEvents)
	sg.POST("/events", api.createEvent)
	sg.GET("/groups", api.queryGroups)

	// detail endpoints
	dg := sg.Group("/events/:id")
	dg.PUT("", api.updateEvent)
	dg.DELETE("", api.destroyEvent)
}

// Handlers

// upload ingests a schedule file (.xlsx or .csv) and replaces the whole
// event set with its normalized rows.
func (api *scheduleApi) upload(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return core.NewValidationError(errors.New("a schedule file is required"))
	}
	if max := core.Conf.GetInt64("uploadMaxBytes"); fh.Size > max {
		return core.NewValidationError(errors.Errorf("file exceeds the %d byte upload limit", max))
	}

	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer src.Close()

	res, err := api.svc.Import(fh.Filename, src)
	if err != nil {
		return errors.Wrap(err, "importing schedule")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *scheduleApi) queryEvents(ctx echo.Context) error {
	events, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *scheduleApi) createEvent(ctx echo.Context) error {
	var data schedule.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating event")
	}
	return ctx.JSON(http.StatusCreated, evt)
}

func (api *scheduleApi) updateEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	var data schedule.UpdateEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEvent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.Update(id, data)
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating event")
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api *scheduleApi) destroyEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	if err := api.svc.Delete(id); err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting event")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *scheduleApi) queryGroups(ctx echo.Context) error {
	groups, err := api.svc.Groups()
	if err != nil {
		return errors.Wrap(err, "querying groups")
	}
	return ctx.JSON(http.StatusOK, groups)
}
