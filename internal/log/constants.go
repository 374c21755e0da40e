package log

const (
	KeyAppName       = "app"
	KeyRequestID     = "requestId"
	KeyProcess       = "process"
	KeyTag           = "tag"
	KeyConfig        = "config"
	KeyToken         = "token"
	KeySessionID     = "sessionId"
	KeyCacheKey      = "cacheKey"
	KeyDbURL         = "dbUrl"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyPathValues    = "pathValues"

	KeyCart          = "cart"
	KeyCartItems     = "cartItems"
	KeyCartItemCount = "cartItemCount"
	KeyLineID        = "lineId"
	KeyProductID     = "productId"
	KeyVariant       = "variant"
	KeyQuantity      = "quantity"
	KeyPromoCode     = "promoCode"
	KeySummary       = "summary"

	KeyOrderID    = "orderId"
	KeyOrderItems = "orderItems"
	KeyBatch      = "batch"
	KeyBatchSize  = "batchSize"

	KeyProducts = "products"
	KeyCategory = "category"
	KeyBrand    = "brand"
)
