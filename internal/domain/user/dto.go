// internal/domain/user/dto.go
package user

type UpdateSettingsRequest struct {
	DarkMode     *bool   `json:"dark_mode"`
	EmailUpdates *bool   `json:"email_updates"`
	Timezone     *string `json:"timezone"`
	Language     *string `json:"language"`
}

type RecordVisitRequest struct {
	VisitorName string `json:"visitor_name"`
}
