package catalog

import "net/http"

// Rate-limit tiers the upstream accepts for API keys.
var rateLimitTiers = []string{"free", "starter", "growth", "pro", "enterprise"}

// Add-on types purchasable against an API key.
var addonTypes = []string{"extra_requests", "extra_domains", "priority_support"}

// Admin-settable API key states.
var apiKeyStatuses = []string{"active", "suspended", "revoked"}

// endpoints returns the full descriptor table. One entry per tool, one
// upstream call per entry.
func endpoints() []Endpoint {
	return []Endpoint{
		// --- auth ---
		{
			Name:         "login",
			Description:  "Authenticate against the brand API and cache the returned tokens for subsequent calls.",
			Method:       http.MethodPost,
			PathTemplate: "/auth/login",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "username", Type: "string", Description: "Account username or email", Required: true, In: InBody},
				{Name: "password", Type: "string", Description: "Account password", Required: true, In: InBody},
				{Name: "tenantId", Type: "string", Description: "Optional tenant identifier", In: InBody},
			},
		},
		{
			Name:         "refresh_token",
			Description:  "Rotate the access token. Uses the cached refresh token when none is passed.",
			Method:       http.MethodPost,
			PathTemplate: "/auth/refresh",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "refreshToken", Type: "string", Description: "Refresh token override; defaults to the cached one", In: InBody},
			},
		},
		{
			Name:         "forgot_password",
			Description:  "Request a password reset email for an account.",
			Method:       http.MethodPost,
			PathTemplate: "/auth/forgot-password",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "email", Type: "string", Description: "Account email address", Required: true, In: InBody},
			},
			Summary: "Password reset email requested for {email}.",
		},
		{
			Name:         "reset_password",
			Description:  "Complete a password reset using the emailed reset token.",
			Method:       http.MethodPost,
			PathTemplate: "/auth/reset-password",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "token", Type: "string", Description: "Reset token from the email", Required: true, In: InBody},
				{Name: "newPassword", Type: "string", Description: "New account password", Required: true, In: InBody},
			},
			Summary: "Password reset completed.",
		},

		// --- users ---
		{
			Name:         "get_user_by_id",
			Description:  "Fetch a user record by its identifier.",
			Method:       http.MethodGet,
			PathTemplate: "/api/users/userId/{id}",
			RequiresAuth: true,
			Params: []Param{
				{Name: "id", Type: "string", Description: "User identifier", Required: true, In: InPath},
			},
			Summary: "Retrieved user {id}.",
		},
		{
			Name:         "get_user_profile",
			Description:  "Fetch the profile of the authenticated user.",
			Method:       http.MethodGet,
			PathTemplate: "/api/users/profile",
			RequiresAuth: true,
			Summary:      "Retrieved the authenticated user's profile.",
		},

		// --- brands ---
		{
			Name:         "list_brands",
			Description:  "List brands with pagination.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "page", Type: "integer", Description: "Page number, starting at 1", In: InQuery},
				{Name: "limit", Type: "integer", Description: "Page size", In: InQuery},
			},
			Summary: "Retrieved brand list.",
		},
		{
			Name:         "get_brand_details_by_id",
			Description:  "Fetch full details for a brand by its identifier.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/{id}",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Brand identifier", Required: true, In: InPath},
			},
			Summary: "Retrieved brand {id}.",
		},
		{
			Name:         "get_brand_by_website",
			Description:  "Look up a brand by its website URL.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/by-website",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "website", Type: "string", Description: "Full website URL", Required: true, In: InQuery},
			},
			Summary: "Retrieved brand for website {website}.",
		},
		{
			Name:         "get_brand_by_name",
			Description:  "Look up a brand by its exact name.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/by-name/{name}",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Exact brand name", Required: true, In: InPath},
			},
			Summary: "Retrieved brand {name}.",
		},
		{
			Name:         "search_brands",
			Description:  "Full-text search across brands.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/search",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "query", Type: "string", Description: "Search query", Required: true, In: InQuery},
				{Name: "page", Type: "integer", Description: "Page number, starting at 1", In: InQuery},
				{Name: "limit", Type: "integer", Description: "Page size", In: InQuery},
			},
			Summary: "Searched brands for \"{query}\".",
		},
		{
			Name:         "get_brand_by_domain",
			Description:  "Look up a brand by its registered domain.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/by-domain/{domain}",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "domain", Type: "string", Description: "Domain name, e.g. example.com", Required: true, In: InPath},
			},
			Summary: "Retrieved brand for domain {domain}.",
		},
		{
			Name:         "get_brand_statistics",
			Description:  "Fetch aggregate brand statistics for the authenticated account.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/statistics",
			RequiresAuth: true,
			Summary:      "Retrieved brand statistics.",
		},
		{
			Name:         "get_dashboard_summary",
			Description:  "Fetch the dashboard summary for the authenticated account.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/dashboard/summary",
			RequiresAuth: true,
			Summary:      "Retrieved dashboard summary.",
		},
		{
			Name:         "get_dashboard_searches",
			Description:  "List recent searches shown on the dashboard.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/dashboard/searches",
			RequiresAuth: true,
			Params: []Param{
				{Name: "page", Type: "integer", Description: "Page number, starting at 1", In: InQuery},
				{Name: "limit", Type: "integer", Description: "Page size", In: InQuery},
			},
			Summary: "Retrieved dashboard searches.",
		},
		{
			Name:         "get_dashboard_details",
			Description:  "Fetch detailed dashboard metrics for the authenticated account.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/dashboard/details",
			RequiresAuth: true,
			Summary:      "Retrieved dashboard details.",
		},
		{
			Name:         "serve_brand_asset",
			Description:  "Download a brand asset (logo, icon, media file) as binary data.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/assets/{assetId}",
			SendAPIKey:   true,
			Binary:       true,
			Params: []Param{
				{Name: "assetId", Type: "string", Description: "Asset identifier", Required: true, In: InPath},
			},
			Summary: "Retrieved asset {assetId}",
		},
		{
			Name:         "serve_brand_image",
			Description:  "Download a brand image as binary data.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/images/{imageId}",
			SendAPIKey:   true,
			Binary:       true,
			Params: []Param{
				{Name: "imageId", Type: "string", Description: "Image identifier", Required: true, In: InPath},
			},
			Summary: "Retrieved image {imageId}",
		},
		{
			Name:         "extract_brand_data",
			Description:  "Trigger brand data extraction for a URL. Consumes extraction credits.",
			Method:       http.MethodPost,
			PathTemplate: "/api/brands/extract",
			RequiresAuth: true,
			Params: []Param{
				{Name: "url", Type: "string", Description: "Website URL to extract brand data from", Required: true, In: InBody},
				{Name: "refresh", Type: "boolean", Description: "Force re-extraction even when cached data exists", In: InBody},
			},
			Summary: "Extraction started for {url}.",
		},
		{
			Name:         "claim_brand",
			Description:  "Claim ownership of a brand for the authenticated account.",
			Method:       http.MethodPost,
			PathTemplate: "/api/brands/{id}/claim",
			RequiresAuth: true,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Brand identifier", Required: true, In: InPath},
			},
			Summary: "Claim submitted for brand {id}.",
		},
		{
			Name:         "get_brands_by_category",
			Description:  "List brands in a category. Category 0 is the uncategorized bucket.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/category/{categoryId}",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "categoryId", Type: "integer", Description: "Numeric category identifier; 0 is valid", Required: true, In: InPath},
				{Name: "page", Type: "integer", Description: "Page number, starting at 1", In: InQuery},
				{Name: "limit", Type: "integer", Description: "Page size", In: InQuery},
			},
			Summary: "Retrieved brands in category {categoryId}.",
		},
		{
			Name:         "get_brands_by_subcategory",
			Description:  "List brands in a category/subcategory pair.",
			Method:       http.MethodGet,
			PathTemplate: "/api/brands/category/{categoryId}/subcategory/{subCategoryId}",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "categoryId", Type: "integer", Description: "Numeric category identifier; 0 is valid", Required: true, In: InPath},
				{Name: "subCategoryId", Type: "integer", Description: "Numeric subcategory identifier; 0 is valid", Required: true, In: InPath},
				{Name: "page", Type: "integer", Description: "Page number, starting at 1", In: InQuery},
				{Name: "limit", Type: "integer", Description: "Page size", In: InQuery},
			},
			Summary: "Retrieved brands in category {categoryId}/{subCategoryId}.",
		},

		// --- API keys ---
		{
			Name:         "create_api_key",
			Description:  "Create a new API key for the authenticated account.",
			Method:       http.MethodPost,
			PathTemplate: "/api/v1/api-keys",
			RequiresAuth: true,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Human-readable key name", Required: true, In: InBody},
				{Name: "rateLimitTier", Type: "string", Description: "Rate-limit tier for the key", Enum: rateLimitTiers, In: InBody},
				{Name: "expiresInDays", Type: "integer", Description: "Days until the key expires; omit for no expiry", In: InBody},
			},
			Summary: "Created API key \"{name}\".",
		},
		{
			Name:         "list_api_keys",
			Description:  "List the API keys of the authenticated account.",
			Method:       http.MethodGet,
			PathTemplate: "/api/v1/api-keys",
			RequiresAuth: true,
			Summary:      "Retrieved API key list.",
		},
		{
			Name:         "get_api_key",
			Description:  "Fetch one API key by its identifier.",
			Method:       http.MethodGet,
			PathTemplate: "/api/v1/api-keys/{keyId}",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InPath},
			},
			Summary: "Retrieved API key {keyId}.",
		},
		{
			Name:         "update_api_key",
			Description:  "Update the name or rate-limit tier of an API key.",
			Method:       http.MethodPatch,
			PathTemplate: "/api/v1/api-keys/{keyId}",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InPath},
				{Name: "name", Type: "string", Description: "New key name", In: InBody},
				{Name: "rateLimitTier", Type: "string", Description: "New rate-limit tier", Enum: rateLimitTiers, In: InBody},
			},
			Summary: "Updated API key {keyId}.",
		},
		{
			Name:         "revoke_api_key",
			Description:  "Revoke an API key. Revoked keys stop working immediately but remain listed.",
			Method:       http.MethodPost,
			PathTemplate: "/api/v1/api-keys/{keyId}/revoke",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InPath},
			},
			Summary: "Revoked API key {keyId}.",
		},
		{
			Name:         "regenerate_api_key",
			Description:  "Regenerate the secret of an API key, invalidating the old secret.",
			Method:       http.MethodPost,
			PathTemplate: "/api/v1/api-keys/{keyId}/regenerate",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InPath},
			},
			Summary: "Regenerated API key {keyId}.",
		},
		{
			Name:         "delete_api_key",
			Description:  "Permanently delete an API key.",
			Method:       http.MethodDelete,
			PathTemplate: "/api/v1/api-keys/{keyId}",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InPath},
			},
			Summary: "Deleted API key {keyId}.",
		},

		// --- add-ons ---
		{
			Name:         "list_addon_catalog",
			Description:  "List purchasable add-ons and their pricing.",
			Method:       http.MethodGet,
			PathTemplate: "/api/v1/api-keys/addons/catalog",
			RequiresAuth: true,
			Summary:      "Retrieved add-on catalog.",
		},
		{
			Name:         "purchase_addon",
			Description:  "Purchase an add-on against an API key.",
			Method:       http.MethodPost,
			PathTemplate: "/api/v1/api-keys/addons/purchase",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key the add-on applies to", Required: true, In: InBody},
				{Name: "addonType", Type: "string", Description: "Add-on type", Required: true, Enum: addonTypes, In: InBody},
				{Name: "quantity", Type: "integer", Description: "Units to purchase", Required: true, In: InBody},
			},
			Summary: "Purchased {quantity} x {addonType} for key {keyId}.",
		},
		{
			Name:         "get_addon_usage",
			Description:  "Fetch add-on usage for an API key.",
			Method:       http.MethodGet,
			PathTemplate: "/api/v1/api-keys/addons/usage",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InQuery},
			},
			Summary: "Retrieved add-on usage for key {keyId}.",
		},
		{
			Name:         "cancel_addon",
			Description:  "Cancel a recurring add-on on an API key.",
			Method:       http.MethodPost,
			PathTemplate: "/api/v1/api-keys/addons/cancel",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InBody},
				{Name: "addonId", Type: "string", Description: "Identifier of the purchased add-on", Required: true, In: InBody},
			},
			Summary: "Cancelled add-on {addonId} on key {keyId}.",
		},

		// --- admin ---
		{
			Name:         "admin_list_api_keys",
			Description:  "Admin: list API keys across all accounts.",
			Method:       http.MethodGet,
			PathTemplate: "/api/admin/api-keys",
			RequiresAuth: true,
			Params: []Param{
				{Name: "page", Type: "integer", Description: "Page number, starting at 1", In: InQuery},
				{Name: "limit", Type: "integer", Description: "Page size", In: InQuery},
			},
			Summary: "Retrieved admin API key list.",
		},
		{
			Name:         "admin_get_api_key_usage",
			Description:  "Admin: fetch usage metrics for any API key.",
			Method:       http.MethodGet,
			PathTemplate: "/api/admin/api-keys/{keyId}/usage",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InPath},
			},
			Summary: "Retrieved usage for API key {keyId}.",
		},
		{
			Name:         "admin_update_api_key_status",
			Description:  "Admin: change the status of any API key.",
			Method:       http.MethodPatch,
			PathTemplate: "/api/admin/api-keys/{keyId}/status",
			RequiresAuth: true,
			Params: []Param{
				{Name: "keyId", Type: "string", Description: "API key identifier", Required: true, In: InPath},
				{Name: "status", Type: "string", Description: "New key status", Required: true, Enum: apiKeyStatuses, In: InBody},
			},
			Summary: "Set API key {keyId} status to {status}.",
		},

		// --- forward ---
		{
			Name:         "forward_request",
			Description:  "Forward an arbitrary request through the backend's /forward endpoint.",
			Method:       http.MethodPost,
			PathTemplate: "/forward",
			SendAPIKey:   true,
			Params: []Param{
				{Name: "path", Type: "string", Description: "Upstream path to forward to", Required: true, In: InBody},
				{Name: "method", Type: "string", Description: "HTTP method for the forwarded call; defaults to GET", In: InBody},
				{Name: "payload", Type: "object", Description: "Optional JSON payload for the forwarded call", In: InBody},
				{Name: "isPublic", Type: "boolean", Description: "Forward without requiring authentication", In: InBody},
			},
		},
	}
}
