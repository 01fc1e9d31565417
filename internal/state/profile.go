package state

// OpenProfile prefills the editor from the session user and opens it.
func OpenProfile(s State) State {
	u, ok := s.SessionUser()
	if !ok {
		return s
	}
	s.ProfileForm = ProfileForm{Name: u.Name, Bio: u.Bio, Avatar: u.Avatar}
	s.ProfileOpen = true
	return s
}

// SetProfileField edits one profile editor field.
func SetProfileField(s State, field ProfileField, value string) State {
	switch field {
	case ProfileName:
		s.ProfileForm.Name = value
	case ProfileBio:
		s.ProfileForm.Bio = value
	case ProfileAvatar:
		s.ProfileForm.Avatar = value
	}
	return s
}

// CancelProfile closes the editor without saving.
func CancelProfile(s State) State {
	s.ProfileOpen = false
	return s
}

// SaveProfile writes the form onto the session user and closes the editor.
// Values are stored as typed; an empty name is accepted.
func SaveProfile(s State) (State, Effect) {
	i := s.Users.Index(s.Session)
	if s.Session == "" || i < 0 {
		return s, Effect{}
	}
	users := s.Users.Clone()
	users[i].Name = s.ProfileForm.Name
	users[i].Bio = s.ProfileForm.Bio
	users[i].Avatar = s.ProfileForm.Avatar
	s.Users = users
	s.ProfileOpen = false
	return s, info("profile saved", "userID", s.Session)
}
