// File: utils/constants.go
package utils

import "time"

// AccessTokenTTL is the lifetime of access tokens issued by the development API.
const AccessTokenTTL = 24 * time.Hour
