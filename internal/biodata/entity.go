// AngelaMos | 2026
// entity.go

package biodata

const fieldFavourite = "isFavourite"

// profileKeys are the only fields a full replace writes. Anything else the
// caller sends, isFavourite included, is left untouched in the store.
var profileKeys = []string{
	"biodataID",
	"biodataType",
	"contactEmail",
	"dateOfBirth",
	"expectedPartnerAge",
	"expectedPartnerHeight",
	"expectedPartnerWeight",
	"fathersName",
	"mobileNumber",
	"mothersName",
	"occupation",
	"permanentDivision",
	"presentDivision",
	"profileImg",
	"race",
	"yourAge",
	"yourHeight",
	"yourName",
	"yourWeight",
}
