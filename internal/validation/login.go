package validation

type LoginRequest struct {
	Username *string `json:"username" validate:"required,notblank,max=150"`
	Password *string `json:"password" validate:"required,notblank"`
}

type RefreshRequest struct {
	Refresh *string `json:"refresh" validate:"required,notblank"`
}

func ValidateLogin(req LoginRequest) (username, password string, err error) {
	if err := checkStruct(req); err != nil {
		return "", "", err
	}
	return *req.Username, *req.Password, nil
}

func ValidateRefresh(req RefreshRequest) (string, error) {
	if err := checkStruct(req); err != nil {
		return "", err
	}
	return *req.Refresh, nil
}
