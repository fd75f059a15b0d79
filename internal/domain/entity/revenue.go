package entity

// RevenueStream identifies one of the platform's fixed revenue streams.
type RevenueStream string

const (
	StreamSubscriptions RevenueStream = "subscriptions"
	StreamMarketplace   RevenueStream = "marketplace"
	StreamAds           RevenueStream = "ads"
	StreamPartnerships  RevenueStream = "partnerships"
	StreamMerchandise   RevenueStream = "merchandise"
)

// RevenueStreams returns the fixed stream set in a stable order.
func RevenueStreams() []RevenueStream {
	return []RevenueStream{
		StreamSubscriptions,
		StreamMarketplace,
		StreamAds,
		StreamPartnerships,
		StreamMerchandise,
	}
}

// ValidStream reports whether the stream is in the fixed set.
func ValidStream(stream RevenueStream) bool {
	switch stream {
	case StreamSubscriptions, StreamMarketplace, StreamAds, StreamPartnerships, StreamMerchandise:
		return true
	default:
		return false
	}
}
