package constants

// NATS Subjects
const (
	SubjectRouteCalculate = "route.calculate"
)

// JetStream streams and consumers
const (
	StreamRoute            = "ROUTE_STREAM"
	ConsumerRouteCalculate = "route_calculate_worker"
)

// NSQ topics
const (
	TopicRouteCalculate = "route_calculate"
)
