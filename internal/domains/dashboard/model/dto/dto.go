package dto

import roomModel "frontdesk/internal/domains/room/model"

type RoomStats struct {
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Reserved    int `json:"reserved"`
	Dirty       int `json:"dirty"`
	Maintenance int `json:"maintenance"`
	Total       int `json:"total"`
	Unavailable int `json:"unavailable"`
}

func (r *RoomStats) FromCounts(counts map[roomModel.Status]int) {
	r.Available = counts[roomModel.StatusAvailable]
	r.Occupied = counts[roomModel.StatusOccupied]
	r.Reserved = counts[roomModel.StatusReserved]
	r.Dirty = counts[roomModel.StatusDirty]
	r.Maintenance = counts[roomModel.StatusMaintenance]

	r.Total = 0
	for _, count := range counts {
		r.Total += count
	}

	r.Unavailable = r.Total - r.Available
}

type StatsResponse struct {
	TotalBookings   int       `json:"total_bookings"`
	CheckedIn       int       `json:"checked_in"`
	PendingCheckout int       `json:"pending_checkout"`
	TodayArrivals   int       `json:"today_arrivals"`
	TodayDepartures int       `json:"today_departures"`
	Rooms           RoomStats `json:"rooms"`
}
