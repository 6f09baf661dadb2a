// Package locations is the static travel directory. The list is fixed at
// compile time; the booking core only ever reads it.
package locations

import (
	"strings"

	"travelapp/internal/domain/models"
)

var directory = []models.Location{
	{ID: "1", Name: "Mumbai", State: "Maharashtra", District: "Mumbai", Code: "MUM"},
	{ID: "2", Name: "Delhi", State: "Delhi", District: "New Delhi", Code: "DEL"},
	{ID: "3", Name: "Bangalore", State: "Karnataka", District: "Bangalore Urban", Code: "BLR"},
	{ID: "4", Name: "Chennai", State: "Tamil Nadu", District: "Chennai", Code: "MAA"},
	{ID: "5", Name: "Kolkata", State: "West Bengal", District: "Kolkata", Code: "CCU"},
	{ID: "6", Name: "Hyderabad", State: "Telangana", District: "Hyderabad", Code: "HYD"},
	{ID: "7", Name: "Pune", State: "Maharashtra", District: "Pune", Code: "PNQ"},
	{ID: "8", Name: "Ahmedabad", State: "Gujarat", District: "Ahmedabad", Code: "AMD"},
	{ID: "9", Name: "Jaipur", State: "Rajasthan", District: "Jaipur", Code: "JAI"},
	{ID: "10", Name: "Kochi", State: "Kerala", District: "Ernakulam", Code: "COK"},
	{ID: "11", Name: "Goa", State: "Goa", District: "North Goa", Code: "GOI"},
	{ID: "12", Name: "Chandigarh", State: "Chandigarh", District: "Chandigarh", Code: "IXC"},
	{ID: "13", Name: "Indore", State: "Madhya Pradesh", District: "Indore", Code: "IDR"},
	{ID: "14", Name: "Coimbatore", State: "Tamil Nadu", District: "Coimbatore", Code: "CJB"},
	{ID: "15", Name: "Lucknow", State: "Uttar Pradesh", District: "Lucknow", Code: "LKO"},
	{ID: "16", Name: "Bhubaneswar", State: "Odisha", District: "Khordha", Code: "BBI"},
	{ID: "17", Name: "Thiruvananthapuram", State: "Kerala", District: "Thiruvananthapuram", Code: "TRV"},
	{ID: "18", Name: "Nagpur", State: "Maharashtra", District: "Nagpur", Code: "NAG"},
	{ID: "19", Name: "Vishakhapatnam", State: "Andhra Pradesh", District: "Vishakhapatnam", Code: "VTZ"},
	{ID: "20", Name: "Surat", State: "Gujarat", District: "Surat", Code: "STV"},
	{ID: "21", Name: "Agra", State: "Uttar Pradesh", District: "Agra", Code: "AGR"},
	{ID: "22", Name: "Varanasi", State: "Uttar Pradesh", District: "Varanasi", Code: "VNS"},
	{ID: "23", Name: "Amritsar", State: "Punjab", District: "Amritsar", Code: "ATQ"},
	{ID: "24", Name: "Jodhpur", State: "Rajasthan", District: "Jodhpur", Code: "JDH"},
	{ID: "25", Name: "Madurai", State: "Tamil Nadu", District: "Madurai", Code: "IXM"},
	{ID: "26", Name: "Udaipur", State: "Rajasthan", District: "Udaipur", Code: "UDR"},
	{ID: "27", Name: "Mangalore", State: "Karnataka", District: "Dakshina Kannada", Code: "IXE"},
	{ID: "28", Name: "Patna", State: "Bihar", District: "Patna", Code: "PAT"},
	{ID: "29", Name: "Bhopal", State: "Madhya Pradesh", District: "Bhopal", Code: "BHO"},
	{ID: "30", Name: "Guwahati", State: "Assam", District: "Kamrup", Code: "GAU"},
}

// All returns the directory in its fixed order.
func All() []models.Location {
	out := make([]models.Location, len(directory))
	copy(out, directory)
	return out
}

func ByID(id string) (models.Location, bool) {
	for _, loc := range directory {
		if loc.ID == id {
			return loc, true
		}
	}
	return models.Location{}, false
}

// Search matches a case-insensitive substring against name, state and
// district. An empty query returns the whole directory.
func Search(q string) []models.Location {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return All()
	}
	out := []models.Location{}
	for _, loc := range directory {
		if strings.Contains(strings.ToLower(loc.Name), q) ||
			strings.Contains(strings.ToLower(loc.State), q) ||
			strings.Contains(strings.ToLower(loc.District), q) {
			out = append(out, loc)
		}
	}
	return out
}
