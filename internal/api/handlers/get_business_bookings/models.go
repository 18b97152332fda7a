package get_business_bookings

import (
	"strconv"
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/internal/service/bookings/models"
	"github.com/dtroshin/CWM-BookingService/pkg/ptr"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(businessID int64, serviceIDStr, statusStr, dateStr, includeInactiveStr string) (*models.GetBusinessBookingsRequest, error) {
	req := &models.GetBusinessBookingsRequest{
		BusinessID: businessID,
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = ptr.Ptr(serviceID)
	}

	if statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = ptr.Ptr(date)
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
