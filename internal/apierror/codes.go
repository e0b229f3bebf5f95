package apierror

// Error type URIs following the urn:reclaim:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:reclaim:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:reclaim:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:reclaim:error:conflict"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:reclaim:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:reclaim:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:reclaim:error:internal"

	// TypeInvalidUUID indicates an invalid UUID format in request (400)
	TypeInvalidUUID = "urn:reclaim:error:invalid_uuid"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:reclaim:error:bad_request"

	// TypeStoreUnavailable indicates the record store rejected or timed out (503)
	TypeStoreUnavailable = "urn:reclaim:error:store_unavailable"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation       = "Validation Error"
	TitleNotFound         = "Resource Not Found"
	TitleConflict         = "Resource Conflict"
	TitleUnauthorized     = "Authentication Required"
	TitleForbidden        = "Permission Denied"
	TitleInternal         = "Internal Server Error"
	TitleInvalidUUID      = "Invalid UUID Format"
	TitleBadRequest       = "Bad Request"
	TitleStoreUnavailable = "Record Store Unavailable"
)
