package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opentrip/internal/domain"
	"opentrip/internal/http/middleware"
	"opentrip/internal/utils"
)

// =======================
// DTO
// =======================

type TripDTO struct {
	ID          string       `json:"trip_id"`
	Destination string       `json:"destination"`
	Description string       `json:"description,omitempty"`
	Capacity    int          `json:"capacity"`
	Booked      int          `json:"booked"`
	Available   int          `json:"available"`
	IsAvailable bool         `json:"is_available"`
	GuideID     string       `json:"guide_id,omitempty"`
	Schedule    *ScheduleDTO `json:"schedule,omitempty"`
	Itinerary   []string     `json:"itinerary,omitempty"`
}

type ScheduleDTO struct {
	Departure string `json:"departure"`
	Return    string `json:"return"`
}

func tripDTO(t domain.Trip) TripDTO {
	dto := TripDTO{
		ID:          t.ID,
		Destination: t.Destination,
		Description: t.Description,
		Capacity:    t.Capacity,
		Booked:      t.Booked,
		Available:   t.AvailableSlots(),
		IsAvailable: t.IsAvailableForBooking(),
		GuideID:     t.GuideID,
		Itinerary:   t.Itinerary,
	}
	if t.Schedule != nil {
		dto.Schedule = &ScheduleDTO{
			Departure: utils.FormatDate(t.Schedule.Departure),
			Return:    utils.FormatDate(t.Schedule.Return),
		}
	}
	return dto
}

type createTripRequest struct {
	Destination string `json:"destination"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// POST /api/opentrip/trips
func (a API) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	ownerID := ""
	if rc, ok := middleware.GetAuthUser(c); ok {
		ownerID = rc.UserID
	}

	trip, err := a.trips(c).CreateTrip(ownerID, req.Destination, req.Description, req.Capacity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tripDTO(trip))
}

// GET /api/opentrip/trips/:id
func (a API) GetTrip(c *gin.Context) {
	trip, err := a.trips(c).GetTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tripDTO(trip))
}

// GET /api/opentrip/trips
func (a API) ListTrips(c *gin.Context) {
	trips, err := a.trips(c).ListTrips()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]TripDTO, 0, len(trips))
	for _, t := range trips {
		out = append(out, tripDTO(t))
	}
	c.JSON(http.StatusOK, out)
}

type setScheduleRequest struct {
	Departure string `json:"departure"` // YYYY-MM-DD
	Return    string `json:"return"`    // YYYY-MM-DD
}

// POST /api/opentrip/trips/:id/schedule
func (a API) SetTripSchedule(c *gin.Context) {
	var req setScheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	departure, err := utils.ParseDate(req.Departure)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "departure", Msg: "format tanggal harus YYYY-MM-DD"})
		return
	}
	ret, err := utils.ParseDate(req.Return)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "return", Msg: "format tanggal harus YYYY-MM-DD"})
		return
	}

	trip, err := a.trips(c).SetSchedule(c.Param("id"), departure, ret)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tripDTO(trip))
}

type assignGuideRequest struct {
	GuideID string `json:"guide_id"`
}

// POST /api/opentrip/trips/:id/guide
func (a API) AssignTripGuide(c *gin.Context) {
	var req assignGuideRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := a.trips(c).AssignGuide(c.Param("id"), req.GuideID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tripDTO(trip))
}

type updateCapacityRequest struct {
	NewCapacity int `json:"new_capacity"`
}

// PUT /api/opentrip/trips/:id/capacity
func (a API) UpdateTripCapacity(c *gin.Context) {
	var req updateCapacityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := a.trips(c).UpdateCapacity(c.Param("id"), req.NewCapacity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tripDTO(trip))
}

type updateItineraryRequest struct {
	Activities []string `json:"activities"`
}

// PUT /api/opentrip/trips/:id/itinerary
func (a API) UpdateTripItinerary(c *gin.Context) {
	var req updateItineraryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := a.trips(c).UpdateItinerary(c.Param("id"), req.Activities)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tripDTO(trip))
}
