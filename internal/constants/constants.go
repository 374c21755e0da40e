package constants

const (
	AppStorefrontService = "storefront-service"
	AudienceGuest        = "audience-guest"
)
