package pubsub

import (
	"strconv"

	"whatsorder/internal/domain/service"
)

// orderAttributes are attached to every published message so consumers can
// filter without decoding the payload.
func orderAttributes(event *service.OrderLoggedEvent) map[string]string {
	attrs := map[string]string{
		"event_id":    event.EventID,
		"order_id":    strconv.FormatInt(event.OrderID, 10),
		"business_id": strconv.FormatInt(event.BusinessID, 10),
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
