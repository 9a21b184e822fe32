package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

const (
	notificationQueue   = "notification_queue"
	notificationSubject = "Be sober before shift"
	notificationBody    = "<p>Hi! Please be ready for drug test before your shift</p>"
)

// RunRandomizer draws the random main/standby selection from the date's active
// employees on the given shift and appends the outcome to the document's
// randomizer log. Running it again for the same date and shift adds another
// log entry; nothing is deduplicated.
func (h *Handler) RunRandomizer(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)
	shift := r.Context().Value(ShiftNameCtx).(string)

	employees, err := h.repository.GetActiveEmployeesByShift(doc.ID, shift)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	snapshots := make([]domain.EmployeeSnapshot, 0, len(employees))
	for _, employee := range employees {
		snapshots = append(snapshots, employee.Snapshot())
	}

	run := &domain.RandomizerRun{
		Shift:  shift,
		Result: h.sampler.Sample(snapshots),
	}

	if err := h.repository.InsertRandomizerRun(doc.ID, run); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "randomization recorded", run)
}

// SendNotifications emails the main list of a randomization result. The
// recipients are chunked so no single queue message carries more than the
// configured batch size; a redis guard key rejects a repeated send for the
// same date and shift until it expires.
func (h *Handler) SendNotifications(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date   string                     `json:"date" validate:"required,datetime=2006-01-02"`
		Shift  string                     `json:"shift" validate:"required,oneof=alpha bravo charlie delta echo"`
		Result domain.RandomizationResult `json:"result"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if len(req.Result.MainList) == 0 {
		h.badRequest(w, r, errors.New("result has no main list recipients"))
		return
	}

	// the guard key only throttles repeated sends, the randomizer log itself
	// keeps every run
	guardKey := fmt.Sprintf("notify_sent_%s_%s", req.Date, req.Shift)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	ok, err := h.redisClient.SetNX(ctx, guardKey, 1, time.Duration(h.config.Notification.ResendGuard)*time.Second).Result()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.errorResponse(w, r, "notifications already sent for this date and shift")
		return
	}

	recipients := make([]domain.Recipient, 0, len(req.Result.MainList))
	for _, snapshot := range req.Result.MainList {
		recipients = append(recipients, domain.Recipient{Email: snapshot.Email, Name: snapshot.Name})
	}

	batches := chunkRecipients(recipients, h.config.Notification.BatchSize)
	for _, batch := range batches {
		mailMessage := domain.MailMessage{
			Recipients: batch,
			Subject:    notificationSubject,
			Body:       notificationBody,
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		publishCtx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.mailChannel.PublishWithContext(
			publishCtx,
			"",
			notificationQueue,
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		)
		cancel()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "notifications queued", map[string]int{
		"recipients": len(recipients),
		"batches":    len(batches),
	})
}

func chunkRecipients(recipients []domain.Recipient, size int) [][]domain.Recipient {
	// a misconfigured batch size must not divide by zero
	if size <= 0 {
		if len(recipients) == 0 {
			return [][]domain.Recipient{}
		}
		return [][]domain.Recipient{recipients}
	}

	batches := make([][]domain.Recipient, 0, (len(recipients)+size-1)/size)
	for start := 0; start < len(recipients); start += size {
		end := min(start+size, len(recipients))
		batches = append(batches, recipients[start:end])
	}
	return batches
}
