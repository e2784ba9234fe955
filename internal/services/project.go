package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
	"github.com/atelierhaus/atelier-backend/internal/repos"
)

// ProjectService is the transaction boundary for the project aggregate:
// every mutation runs as one transaction and serializes the reloaded
// aggregate on success, so partial writes are never observable.
type ProjectService interface {
	Create(ctx context.Context, input *ProjectCreateInput) (*ProjectView, error)
	Update(ctx context.Context, code string, input *ProjectUpdateInput) (*ProjectView, error)
	Delete(ctx context.Context, code string) error
	Get(ctx context.Context, code string) (*ProjectView, error)
	List(ctx context.Context, filters ProjectListFilters, page, pageSize int) (*ProjectPage, error)

	AddMilestone(ctx context.Context, code string, input *MilestoneInput) (*ProjectView, error)
	UpdateMilestone(ctx context.Context, code string, milestoneID uuid.UUID, input *MilestoneUpdateInput) (*ProjectView, error)
	AppendMaterials(ctx context.Context, code string, inputs []MaterialInput) (*ProjectView, error)
	AppendDesigns(ctx context.Context, code string, inputs []DesignInput) (*ProjectView, error)
	AppendMedia(ctx context.Context, code string, inputs []MediaInput) (*ProjectView, error)
	AddAttachment(ctx context.Context, code string, kind string, file *FileInput) (*ProjectView, error)
	UpsertClosure(ctx context.Context, code string, input *ClosureInput) (*ProjectView, error)
}

type projectService struct {
	db  *gorm.DB
	log *logger.Logger

	codePrefix string

	projectRepo   repos.ProjectRepo
	contactRepo   repos.ContactRepo
	fileRepo      repos.FileObjectRepo
	milestoneRepo repos.MilestoneRepo
	materialRepo  repos.MaterialRepo
	designRepo    repos.DesignRepo
	mediaRepo     repos.MediaRepo
	invoiceRepo   repos.InvoiceRepo
	permitRepo    repos.PermitRepo
	signOffRepo   repos.SignOffRepo
	closureRepo   repos.ClosureRepo
}

type ProjectServiceDeps struct {
	ProjectRepo   repos.ProjectRepo
	ContactRepo   repos.ContactRepo
	FileRepo      repos.FileObjectRepo
	MilestoneRepo repos.MilestoneRepo
	MaterialRepo  repos.MaterialRepo
	DesignRepo    repos.DesignRepo
	MediaRepo     repos.MediaRepo
	InvoiceRepo   repos.InvoiceRepo
	PermitRepo    repos.PermitRepo
	SignOffRepo   repos.SignOffRepo
	ClosureRepo   repos.ClosureRepo
}

func NewProjectService(db *gorm.DB, log *logger.Logger, codePrefix string, deps ProjectServiceDeps) ProjectService {
	return &projectService{
		db:            db,
		log:           log.With("service", "ProjectService"),
		codePrefix:    codePrefix,
		projectRepo:   deps.ProjectRepo,
		contactRepo:   deps.ContactRepo,
		fileRepo:      deps.FileRepo,
		milestoneRepo: deps.MilestoneRepo,
		materialRepo:  deps.MaterialRepo,
		designRepo:    deps.DesignRepo,
		mediaRepo:     deps.MediaRepo,
		invoiceRepo:   deps.InvoiceRepo,
		permitRepo:    deps.PermitRepo,
		signOffRepo:   deps.SignOffRepo,
		closureRepo:   deps.ClosureRepo,
	}
}

func (s *projectService) loadProject(dbc dbctx.Context, code string) (*domain.Project, error) {
	p, err := s.projectRepo.GetByCode(dbc, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("project")
	}
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	return p, nil
}

func (s *projectService) reloadView(dbc dbctx.Context, code string) (*ProjectView, error) {
	p, err := s.projectRepo.GetAggregateByCode(dbc, code)
	if err != nil {
		return nil, fmt.Errorf("reload aggregate: %w", err)
	}
	return serializeProject(p)
}

func (s *projectService) Create(ctx context.Context, input *ProjectCreateInput) (*ProjectView, error) {
	if vErr := validateCreateInput(input); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		code := ""
		if input.Code != nil {
			exists, err := s.projectRepo.CodeExists(dbc, *input.Code)
			if err != nil {
				return fmt.Errorf("check project code: %w", err)
			}
			if exists {
				return apierr.NewValidation(map[string]string{"code": "is already in use"})
			}
			code = *input.Code
		} else {
			generated, err := s.generateProjectCode(dbc)
			if err != nil {
				return err
			}
			code = generated
		}

		salespersonID, err := s.resolveContact(dbc, nil, input.Salesperson)
		if err != nil {
			return err
		}
		designerID, err := s.resolveContact(dbc, nil, input.Designer)
		if err != nil {
			return err
		}
		contractorID, err := s.resolveContact(dbc, nil, input.Contractor)
		if err != nil {
			return err
		}
		quotationFileID, err := s.resolveFile(dbc, input.QuotationFile)
		if err != nil {
			return err
		}

		project := &domain.Project{
			ID:              uuid.New(),
			Code:            code,
			Address:         input.Address,
			Type:            input.Type,
			StatusCode:      domain.StatusInProgress,
			SalespersonID:   salespersonID,
			DesignerID:      designerID,
			ContractorID:    contractorID,
			QuotationFileID: quotationFileID,
		}
		if input.Status != nil {
			statusCode, ok := domain.ProjectStatusCode(*input.Status)
			if !ok {
				return fmt.Errorf("unknown project status %q", *input.Status)
			}
			project.StatusCode = statusCode
		}
		if input.StartDate != nil {
			d, err := parseDate(*input.StartDate)
			if err != nil {
				return fmt.Errorf("start date: %w", err)
			}
			project.StartDate = d
		}
		if input.ETA != nil {
			d, err := parseDate(*input.ETA)
			if err != nil {
				return fmt.Errorf("eta: %w", err)
			}
			project.ETA = d
		}
		if input.SitePhotoURL != nil {
			project.SitePhotoURL = *input.SitePhotoURL
		}
		if input.Discount != nil {
			project.Discount = *input.Discount
		}
		if input.ExtraCharge != nil {
			project.ExtraCharge = *input.ExtraCharge
		}

		if _, err := s.projectRepo.Create(dbc, project); err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		// Nothing exists yet, so these are plain initial inserts.
		if input.Milestones != nil {
			rows, err := buildMilestones(project.ID, *input.Milestones, 0)
			if err != nil {
				return err
			}
			if err := s.milestoneRepo.CreateBatch(dbc, rows); err != nil {
				return fmt.Errorf("create milestones: %w", err)
			}
		}
		if input.Materials != nil {
			rows, err := buildMaterials(project.ID, *input.Materials, 0)
			if err != nil {
				return err
			}
			if err := s.materialRepo.CreateBatch(dbc, rows); err != nil {
				return fmt.Errorf("create materials: %w", err)
			}
		}
		if input.Designs != nil {
			if err := s.designRepo.CreateBatch(dbc, buildDesigns(project.ID, *input.Designs, 0)); err != nil {
				return fmt.Errorf("create designs: %w", err)
			}
		}
		if input.Media != nil {
			rows, err := buildWorksiteMedia(project.ID, *input.Media, 0)
			if err != nil {
				return err
			}
			if err := s.mediaRepo.CreateBatch(dbc, rows); err != nil {
				return fmt.Errorf("create worksite media: %w", err)
			}
		}
		if err := s.replaceInvoices(dbc, project.ID, input.Invoices); err != nil {
			return err
		}
		if err := s.replacePermits(dbc, project.ID, input.Permits); err != nil {
			return err
		}
		if err := s.replaceSignOffs(dbc, project.ID, input.SignOffs); err != nil {
			return err
		}
		if err := s.upsertClosure(dbc, project.ID, input.Closure); err != nil {
			return err
		}

		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		s.log.Warn("Project create failed", "error", err)
		return nil, err
	}
	return view, nil
}

func (s *projectService) Update(ctx context.Context, code string, input *ProjectUpdateInput) (*ProjectView, error) {
	if vErr := validateUpdateInput(input); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}

		salespersonID, err := s.resolveContact(dbc, project.SalespersonID, input.Salesperson)
		if err != nil {
			return err
		}
		designerID, err := s.resolveContact(dbc, project.DesignerID, input.Designer)
		if err != nil {
			return err
		}
		contractorID, err := s.resolveContact(dbc, project.ContractorID, input.Contractor)
		if err != nil {
			return err
		}

		fields := map[string]interface{}{
			"salesperson_id": salespersonID,
			"designer_id":    designerID,
			"contractor_id":  contractorID,
		}

		if input.QuotationFile != nil {
			newFileID, err := s.resolveFile(dbc, input.QuotationFile)
			if err != nil {
				return err
			}
			fields["quotation_file_id"] = newFileID
			if project.QuotationFileID != nil {
				// relink first, then retire the old row
				if err := s.fileRepo.DeleteByIDs(dbc, []uuid.UUID{*project.QuotationFileID}); err != nil {
					return fmt.Errorf("retire quotation file: %w", err)
				}
			}
		}

		if input.Address != nil {
			fields["address"] = *input.Address
		}
		if input.Type != nil {
			fields["type"] = *input.Type
		}
		if input.Status != nil {
			statusCode, ok := domain.ProjectStatusCode(*input.Status)
			if !ok {
				return fmt.Errorf("unknown project status %q", *input.Status)
			}
			fields["status_code"] = statusCode
		}
		if input.StartDate != nil {
			d, err := parseDate(*input.StartDate)
			if err != nil {
				return fmt.Errorf("start date: %w", err)
			}
			fields["start_date"] = d
		}
		if input.ETA != nil {
			d, err := parseDate(*input.ETA)
			if err != nil {
				return fmt.Errorf("eta: %w", err)
			}
			fields["eta"] = d
		}
		if input.SitePhotoURL != nil {
			fields["site_photo_url"] = *input.SitePhotoURL
		}
		if input.Discount != nil {
			fields["discount"] = *input.Discount
		}
		if input.ExtraCharge != nil {
			fields["extra_charge"] = *input.ExtraCharge
		}

		if err := s.projectRepo.UpdateFields(dbc, project.ID, fields); err != nil {
			return fmt.Errorf("update project fields: %w", err)
		}

		if err := s.replaceMilestones(dbc, project.ID, input.Milestones); err != nil {
			return err
		}
		if err := s.replaceMaterials(dbc, project.ID, input.Materials); err != nil {
			return err
		}
		if err := s.replaceDesigns(dbc, project.ID, input.Designs); err != nil {
			return err
		}
		if err := s.replaceWorksiteMedia(dbc, project.ID, input.Media); err != nil {
			return err
		}
		if err := s.replaceInvoices(dbc, project.ID, input.Invoices); err != nil {
			return err
		}
		if err := s.replacePermits(dbc, project.ID, input.Permits); err != nil {
			return err
		}
		if err := s.replaceSignOffs(dbc, project.ID, input.SignOffs); err != nil {
			return err
		}
		if err := s.upsertClosure(dbc, project.ID, input.Closure); err != nil {
			return err
		}

		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		s.log.Warn("Project update failed", "code", code, "error", err)
		return nil, err
	}
	return view, nil
}

func (s *projectService) Delete(ctx context.Context, code string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		return s.projectRepo.SoftDeleteByID(dbc, project.ID)
	})
	if err != nil {
		s.log.Warn("Project delete failed", "code", code, "error", err)
	}
	return err
}

func (s *projectService) AddMilestone(ctx context.Context, code string, input *MilestoneInput) (*ProjectView, error) {
	if vErr := validateMilestoneInput(input); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		count, err := s.milestoneRepo.CountByProjectID(dbc, project.ID)
		if err != nil {
			return fmt.Errorf("count milestones: %w", err)
		}
		rows, err := buildMilestones(project.ID, []MilestoneInput{*input}, int(count))
		if err != nil {
			return err
		}
		if err := s.milestoneRepo.CreateBatch(dbc, rows); err != nil {
			return fmt.Errorf("create milestone: %w", err)
		}
		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *projectService) UpdateMilestone(ctx context.Context, code string, milestoneID uuid.UUID, input *MilestoneUpdateInput) (*ProjectView, error) {
	if vErr := validateMilestoneUpdateInput(input); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		milestone, err := s.milestoneRepo.GetByID(dbc, milestoneID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("milestone")
		}
		if err != nil {
			return fmt.Errorf("load milestone: %w", err)
		}
		if milestone.ProjectID != project.ID {
			return apierr.NotFound("milestone")
		}

		if input.Label != nil {
			milestone.Label = *input.Label
		}
		if input.Amount != nil {
			milestone.Amount = *input.Amount
		}
		if input.Status != nil {
			statusCode, ok := domain.PaymentStatusCode(*input.Status)
			if !ok {
				return fmt.Errorf("unknown payment status %q", *input.Status)
			}
			milestone.StatusCode = statusCode
		}
		if input.Approved != nil {
			milestone.Approved = *input.Approved
		}
		if input.DueDate != nil {
			d, err := parseDate(*input.DueDate)
			if err != nil {
				return fmt.Errorf("due date: %w", err)
			}
			milestone.DueDate = d
		}

		if err := s.milestoneRepo.Update(dbc, milestone); err != nil {
			return fmt.Errorf("update milestone: %w", err)
		}
		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *projectService) AppendMaterials(ctx context.Context, code string, inputs []MaterialInput) (*ProjectView, error) {
	fe := fieldErrors{}
	list := inputs
	fe.checkMaterials("materials", &list)
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		count, err := s.materialRepo.CountByProjectID(dbc, project.ID)
		if err != nil {
			return fmt.Errorf("count materials: %w", err)
		}
		rows, err := buildMaterials(project.ID, inputs, int(count))
		if err != nil {
			return err
		}
		if err := s.materialRepo.CreateBatch(dbc, rows); err != nil {
			return fmt.Errorf("append materials: %w", err)
		}
		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *projectService) AppendDesigns(ctx context.Context, code string, inputs []DesignInput) (*ProjectView, error) {
	fe := fieldErrors{}
	list := inputs
	fe.checkDesigns("designs", &list)
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		count, err := s.designRepo.CountByProjectID(dbc, project.ID)
		if err != nil {
			return fmt.Errorf("count designs: %w", err)
		}
		if err := s.designRepo.CreateBatch(dbc, buildDesigns(project.ID, inputs, int(count))); err != nil {
			return fmt.Errorf("append designs: %w", err)
		}
		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *projectService) AppendMedia(ctx context.Context, code string, inputs []MediaInput) (*ProjectView, error) {
	fe := fieldErrors{}
	list := inputs
	fe.checkMedia("media", &list)
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		count, err := s.mediaRepo.CountWorksiteByProjectID(dbc, project.ID)
		if err != nil {
			return fmt.Errorf("count worksite media: %w", err)
		}
		rows, err := buildWorksiteMedia(project.ID, inputs, int(count))
		if err != nil {
			return err
		}
		if err := s.mediaRepo.CreateBatch(dbc, rows); err != nil {
			return fmt.Errorf("append worksite media: %w", err)
		}
		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *projectService) AddAttachment(ctx context.Context, code string, kind string, file *FileInput) (*ProjectView, error) {
	fe := fieldErrors{}
	switch kind {
	case "invoice", "permit", "signoff":
	default:
		fe.add("type", "must be one of: invoice, permit, signoff")
	}
	fe.checkFile("file", file)
	if file == nil {
		fe.add("file", "is required")
	}
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		fileID, err := s.resolveFile(dbc, file)
		if err != nil {
			return err
		}

		switch kind {
		case "invoice":
			count, err := s.invoiceRepo.CountByProjectID(dbc, project.ID)
			if err != nil {
				return fmt.Errorf("count invoices: %w", err)
			}
			if err := s.invoiceRepo.CreateBatch(dbc, []*domain.ProjectInvoice{{
				ID: uuid.New(), ProjectID: project.ID, FileID: *fileID, Position: int(count),
			}}); err != nil {
				return fmt.Errorf("add invoice: %w", err)
			}
		case "permit":
			count, err := s.permitRepo.CountByProjectID(dbc, project.ID)
			if err != nil {
				return fmt.Errorf("count permits: %w", err)
			}
			if err := s.permitRepo.CreateBatch(dbc, []*domain.ProjectPermit{{
				ID: uuid.New(), ProjectID: project.ID, FileID: *fileID, Position: int(count),
			}}); err != nil {
				return fmt.Errorf("add permit: %w", err)
			}
		case "signoff":
			count, err := s.signOffRepo.CountByProjectID(dbc, project.ID)
			if err != nil {
				return fmt.Errorf("count sign-offs: %w", err)
			}
			if err := s.signOffRepo.CreateBatch(dbc, []*domain.ProjectSignOff{{
				ID: uuid.New(), ProjectID: project.ID, FileID: *fileID, Position: int(count),
			}}); err != nil {
				return fmt.Errorf("add sign-off: %w", err)
			}
		}

		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *projectService) UpsertClosure(ctx context.Context, code string, input *ClosureInput) (*ProjectView, error) {
	fe := fieldErrors{}
	if input == nil {
		fe.add("body", "is required")
	}
	fe.checkClosure("closure", input)
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	var view *ProjectView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		project, err := s.loadProject(dbc, code)
		if err != nil {
			return err
		}
		if err := s.upsertClosure(dbc, project.ID, input); err != nil {
			return err
		}
		v, err := s.reloadView(dbc, code)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
