package constants

// NATS Subjects
const (
	// Upstream tracker pushes raw ping batches here
	SubjectPingBatch = "location.pings.batch"

	// Activity Service publishes detected sessions; suffix is the
	// activity type (activity.detected.golf, activity.detected.dog-walk)
	SubjectActivityDetected = "activity.detected.%s"
)
