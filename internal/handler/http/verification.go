package http

import (
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// resendVerificationMail is the terminal handler of the resend route. Mail
// dispatch itself lives in the account system; by the time the request gets
// here every guard has passed, so the handler only confirms that another
// mail may go out.
func (h *Handler) resendVerificationMail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response := models.MessageResponse{Message: "Verification mail sent"}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.resendVerificationMail").Msg("error writing response")
	}
}
