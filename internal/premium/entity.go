// AngelaMos | 2026
// entity.go

package premium

// StatusPremium is the only status ever written. A request without a
// status is pending.
const StatusPremium = "premium"

const fieldStatus = "status"
