package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/event-manager/internal/dto"
	"github.com/Eursukkul/event-manager/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requiredFieldsMessage = "name, dateTime, location and organizer are required"

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/create", h.CreateEvent)
	g.GET("/get-all", h.ListEvents)
	g.GET("/get-status", h.ListEventsByStatus)
	g.GET("/get-event/:id", h.GetEvent)
	g.PUT("/edit-event/:id", h.UpdateEvent)
	g.DELETE("/delete-event/:id", h.DeleteEvent)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	req, err := bindEventRequest(c)
	if err != nil {
		return err
	}

	event := req.ToModel()
	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating event").SetInternal(err)
	}

	resp := dto.ToEventResponse(event)
	return c.JSON(http.StatusOK, dto.MutationResponse{
		Status:  true,
		Message: "Event created successfully",
		Event:   &resp,
	})
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching events").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *EventHandler) ListEventsByStatus(c echo.Context) error {
	events, err := h.svc.ListEventsByStatus(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching events").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}

	event, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return eventError(err, "Error fetching event")
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}

	req, err := bindEventRequest(c)
	if err != nil {
		return err
	}

	updated, err := h.svc.UpdateEvent(c.Request().Context(), id, req.ToModel())
	if err != nil {
		return eventError(err, "An error occurred while updating event")
	}

	resp := dto.ToEventResponse(updated)
	return c.JSON(http.StatusOK, dto.MutationResponse{
		Status:  true,
		Message: "Event updated successfully",
		Event:   &resp,
	})
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}

	deleted, err := h.svc.DeleteEvent(c.Request().Context(), id)
	if err != nil {
		return eventError(err, "An error occurred while deleting the event")
	}

	resp := dto.ToEventResponse(deleted)
	return c.JSON(http.StatusOK, dto.MutationResponse{
		Status:  true,
		Message: "Event deleted successfully",
		Event:   &resp,
	})
}

func bindEventRequest(c echo.Context) (*dto.EventRequest, error) {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, requiredFieldsMessage).SetInternal(err)
	}

	return &req, nil
}

func parseEventID(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}
	return id.String(), nil
}

func eventError(err error, fallback string) error {
	if errors.Is(err, service.ErrEventNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback).SetInternal(err)
}
