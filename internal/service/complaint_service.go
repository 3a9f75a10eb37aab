package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateComplaintRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	ClaimNumber        string   `json:"claimnumber"`
	ArticleNumber      string   `json:"articlenumber"`
	ArticleDescription string   `json:"articledescription"`
	DeliveryNoteNumber string   `json:"deliverynotenumber"`
	Supplier           string   `json:"supplier"`
	TotalQuantity      int      `json:"totalquantity"`
	DefectiveQuantity  int      `json:"defectivequantity"`
	ContactPerson      string   `json:"contactperson"`
	ContactName        string   `json:"contactname"`
	ContactEmail       string   `json:"contactemail"`
	ContactPhone       string   `json:"contactphone"`
	ErrorDescription   string   `json:"errordescription"`
	StatementResponse  string   `json:"statementresponse"`
	ReportDeadline     string   `json:"reportdeadline"`
	Replacement        bool     `json:"replacement"`
	CreditNote         bool     `json:"creditnote"`
	Remarks            string   `json:"remarks"`
	ErrorPictures      []string `json:"errorpictures"`
}

// UpdateComplaintRequest patches only the fields the caller supplied.
type UpdateComplaintRequest struct {
	ID            string  `json:"id" binding:"required"`
	Status        *string `json:"status"`
	FournisseurID *string `json:"fournisseur_id"`
	Remarks       *string `json:"remarks"`
	Replacement   *bool   `json:"replacement"`
	CreditNote    *bool   `json:"creditnote"`
}

// EmailRef is the joined display projection of a related account.
type EmailRef struct {
	Email string `json:"email"`
}

// ComplaintResponse is a Complaint with the related accounts reduced to their
// emails, the only projection the dashboards display.
type ComplaintResponse struct {
	model.Complaint
	Client      *EmailRef `json:"client,omitempty"`
	Fournisseur *EmailRef `json:"fournisseur,omitempty"`
}

// --- Interface ---

type ComplaintService interface {
	List(ctx context.Context, role, userID string) ([]ComplaintResponse, error)
	Create(ctx context.Context, req CreateComplaintRequest) (*ComplaintResponse, error)
	Update(ctx context.Context, req UpdateComplaintRequest) (*ComplaintResponse, error)
	Delete(ctx context.Context, id string) error
}

type complaintService struct {
	complaints repository.ComplaintRepository
	users      repository.UserRepository
	audit      repository.AuditRepository
	txManager  repository.TransactionManager
	hub        *ws.Hub
}

// NewComplaintService returns a new instance of ComplaintService. hub may be
// nil when no live dashboard feed is wanted (tests).
func NewComplaintService(
	complaints repository.ComplaintRepository,
	users repository.UserRepository,
	audit repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) ComplaintService {
	return &complaintService{
		complaints: complaints,
		users:      users,
		audit:      audit,
		txManager:  txManager,
		hub:        hub,
	}
}

// --- Implementation ---

func (s *complaintService) List(ctx context.Context, role, userID string) ([]ComplaintResponse, error) {
	var (
		complaints []model.Complaint
		err        error
	)

	switch role {
	case model.RoleAdmin:
		// Admin sees everything regardless of userID
		complaints, err = s.complaints.ListAll(ctx)
	case model.RoleClient:
		complaints, err = s.complaints.ListByClient(ctx, userID)
	case model.RoleFournisseur:
		complaints, err = s.complaints.ListByFournisseur(ctx, userID)
	default:
		return nil, ErrInvalidRole
	}
	if err != nil {
		return nil, err
	}

	result := make([]ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		result = append(result, toComplaintResponse(c))
	}
	return result, nil
}

func (s *complaintService) Create(ctx context.Context, req CreateComplaintRequest) (*ComplaintResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid client_id: %w", err)
	}

	complaint := model.Complaint{
		ClientID:           clientID,
		Status:             model.StatusPending, // status is forced, never caller-supplied
		Title:              req.Title,
		Description:        req.Description,
		ClaimNumber:        req.ClaimNumber,
		ArticleNumber:      req.ArticleNumber,
		ArticleDescription: req.ArticleDescription,
		DeliveryNoteNumber: req.DeliveryNoteNumber,
		Supplier:           req.Supplier,
		TotalQuantity:      req.TotalQuantity,
		DefectiveQuantity:  req.DefectiveQuantity,
		ContactPerson:      req.ContactPerson,
		ContactName:        req.ContactName,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		ErrorDescription:   req.ErrorDescription,
		StatementResponse:  req.StatementResponse,
		ReportDeadline:     req.ReportDeadline,
		Replacement:        req.Replacement,
		CreditNote:         req.CreditNote,
		Remarks:            req.Remarks,
		ErrorPictures:      req.ErrorPictures,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.complaints.Create(txCtx, &complaint); createErr != nil {
			return fmt.Errorf("failed to create complaint: %w", createErr)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"title":       complaint.Title,
			"claimnumber": complaint.ClaimNumber,
		})
		return s.audit.Log(txCtx, &model.AuditLog{
			UserID:     &clientID,
			Action:     model.ActionCreateComplaint,
			EntityID:   complaint.ID.String(),
			EntityName: complaint.Title,
			Details:    string(details),
		})
	})
	if err != nil {
		return nil, err
	}

	// Reload with relations for the response
	created, err := s.complaints.GetByID(ctx, complaint.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to reload complaint: %w", err)
	}

	s.hub.Notify(ws.Event{Type: ws.EventComplaintCreated, ComplaintID: created.ID.String()})

	resp := toComplaintResponse(*created)
	return &resp, nil
}

func (s *complaintService) Update(ctx context.Context, req UpdateComplaintRequest) (*ComplaintResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return nil, fmt.Errorf("invalid complaint id: %w", err)
	}

	var (
		complaint *model.Complaint
		event     string
	)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		complaint, findErr = s.complaints.GetByID(txCtx, req.ID)
		if findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return ErrComplaintNotFound
			}
			return findErr
		}

		if req.FournisseurID != nil && *req.FournisseurID != "" {
			fournisseur, lookupErr := s.users.GetByID(txCtx, *req.FournisseurID)
			if lookupErr != nil || fournisseur.Role != model.RoleFournisseur {
				return ErrUnknownFournisseur
			}
			complaint.FournisseurID = &fournisseur.ID
		}

		action := ""
		if req.Status != nil && *req.Status != complaint.Status {
			next := *req.Status
			if !model.ValidStatus(next) || !model.CanTransition(complaint.Status, next) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, complaint.Status, next)
			}
			if next != model.StatusPending && complaint.FournisseurID == nil {
				return ErrMissingFournisseur
			}

			switch {
			case complaint.Status == model.StatusPending && next == model.StatusAssigned:
				action = model.ActionAssignComplaint
				event = ws.EventComplaintAssigned
			case next == model.StatusResolved:
				action = model.ActionResolveComplaint
				event = ws.EventComplaintResolved
			case complaint.Status == model.StatusResolved && next == model.StatusAssigned:
				action = model.ActionReopenComplaint
				event = ws.EventComplaintReopened
			}
			complaint.Status = next
		} else if req.FournisseurID != nil {
			action = model.ActionAssignComplaint
			event = ws.EventComplaintAssigned
		}

		if req.Remarks != nil {
			complaint.Remarks = *req.Remarks
		}
		if req.Replacement != nil {
			complaint.Replacement = *req.Replacement
		}
		if req.CreditNote != nil {
			complaint.CreditNote = *req.CreditNote
		}

		if saveErr := s.complaints.Save(txCtx, complaint); saveErr != nil {
			return fmt.Errorf("failed to update complaint: %w", saveErr)
		}

		if action == "" {
			return nil
		}

		details, _ := json.Marshal(map[string]interface{}{
			"status":         complaint.Status,
			"fournisseur_id": complaint.FournisseurID,
		})
		return s.audit.Log(txCtx, &model.AuditLog{
			Action:     action,
			EntityID:   complaint.ID.String(),
			EntityName: complaint.Title,
			Details:    string(details),
		})
	})
	if err != nil {
		return nil, err
	}

	if event != "" {
		s.hub.Notify(ws.Event{Type: event, ComplaintID: complaint.ID.String()})
	}

	// Reload with relations
	updated, err := s.complaints.GetByID(ctx, complaint.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to reload complaint: %w", err)
	}

	resp := toComplaintResponse(*updated)
	return &resp, nil
}

// Delete removes a complaint by id. Deleting an id with no matching row still
// succeeds, matching the legacy delete-by-filter behavior the dashboards rely on.
func (s *complaintService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid complaint id: %w", err)
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.complaints.Delete(txCtx, id); deleteErr != nil {
			return fmt.Errorf("failed to delete complaint: %w", deleteErr)
		}
		return s.audit.Log(txCtx, &model.AuditLog{
			Action:   model.ActionDeleteComplaint,
			EntityID: id,
		})
	})
	if err != nil {
		return err
	}

	s.hub.Notify(ws.Event{Type: ws.EventComplaintDeleted, ComplaintID: id})
	return nil
}

// --- Helpers ---

func toComplaintResponse(c model.Complaint) ComplaintResponse {
	resp := ComplaintResponse{Complaint: c}
	if c.Client != nil {
		resp.Client = &EmailRef{Email: c.Client.Email}
	}
	if c.Fournisseur != nil {
		resp.Fournisseur = &EmailRef{Email: c.Fournisseur.Email}
	}
	resp.Complaint.Client = nil
	resp.Complaint.Fournisseur = nil
	return resp
}
