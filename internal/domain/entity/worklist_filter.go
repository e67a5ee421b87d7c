package entity

import "strings"

// WorklistStatusAll disables the status predicate of a WorklistFilter
const WorklistStatusAll = "all"

// WorklistFilter is the admin worklist query: free text AND status tab.
// Used by repository and usecase layers to avoid coupling with delivery DTOs.
type WorklistFilter struct {
	Search string // case-insensitive substring of "first last" or email
	Status string // pending, approved, rejected, all ("" means all)
}

// StatusPredicate returns the status to narrow by, or false when every status matches
func (f WorklistFilter) StatusPredicate() (VerificationStatus, bool) {
	if f.Status == "" || f.Status == WorklistStatusAll {
		return "", false
	}
	return VerificationStatus(f.Status), true
}

// Matches reports whether profile passes both predicates.
// profile.User must be loaded for the search predicate.
func (f WorklistFilter) Matches(profile *DoctorProfile) bool {
	if status, ok := f.StatusPredicate(); ok && profile.VerificationStatus != status {
		return false
	}

	needle := strings.ToLower(f.Search)
	if needle == "" {
		return true
	}
	name := strings.ToLower(profile.User.FirstName + " " + profile.User.LastName)
	email := strings.ToLower(profile.User.Email)
	return strings.Contains(name, needle) || strings.Contains(email, needle)
}

// Apply returns the profiles that match the filter, preserving order
func (f WorklistFilter) Apply(profiles []DoctorProfile) []DoctorProfile {
	matched := make([]DoctorProfile, 0, len(profiles))
	for i := range profiles {
		if f.Matches(&profiles[i]) {
			matched = append(matched, profiles[i])
		}
	}
	return matched
}
