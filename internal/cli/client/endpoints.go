package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Chat endpoints
	endpointChatText  = apiV1Prefix + "/chat/text"  // POST
	endpointChatAudio = apiV1Prefix + "/chat/audio" // POST multipart

	// Consultation endpoints
	endpointHistory = apiV1Prefix + "/history" // GET, optional ?q=
	endpointSummary = apiV1Prefix + "/summary" // GET

	// Configuration endpoints
	endpointLanguage = apiV1Prefix + "/config/language" // GET, PUT

	// Session boundary
	endpointSession = "/session" // DELETE
)
