package services

import "api/models"

// Duel lifecycle events pushed to the participants' sessions
const (
	EventDuelInvite    = "duel_invite"
	EventDuelAccepted  = "duel_accepted"
	EventDuelDeclined  = "duel_declined"
	EventDuelCompleted = "duel_completed"
)

// DuelNotifier delivers lifecycle events to the participants' client
// sessions. Delivery is best-effort and fire-and-forget: implementations
// must never block the caller and a dropped event must never affect duel
// state. Clients reconcile by re-reading the duel, not by trusting delivery.
type DuelNotifier interface {
	Notify(event string, duel *models.Duel, recipients []string)
}

// NopNotifier discards every event
type NopNotifier struct{}

func (NopNotifier) Notify(event string, duel *models.Duel, recipients []string) {}
