package registry

import "github.com/mesh-intelligence/contacts/pkg/types"

// mapMobileContact builds a record from its transfer shape. Fields are
// copied as they are; nothing is validated.
func mapMobileContact(dto types.MobileContactDTO) *types.MobileContact {
	return &types.MobileContact{
		ID:          dto.ID,
		PhoneNumber: dto.PhoneNumber,
		UserDetails: mapUserDetails(dto.UserDetails),
	}
}

func mapUserDetails(dto types.UserDetailsDTO) types.UserDetails {
	return types.UserDetails{
		ID:        dto.ID,
		Firstname: dto.Firstname,
		Lastname:  dto.Lastname,
	}
}
