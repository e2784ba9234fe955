package app

import (
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
	"github.com/atelierhaus/atelier-backend/internal/repos"
)

type Repos struct {
	User      repos.UserRepo
	UserToken repos.UserTokenRepo
	Project   repos.ProjectRepo
	Contact   repos.ContactRepo
	File      repos.FileObjectRepo
	Milestone repos.MilestoneRepo
	Material  repos.MaterialRepo
	Design    repos.DesignRepo
	Media     repos.MediaRepo
	Invoice   repos.InvoiceRepo
	Permit    repos.PermitRepo
	SignOff   repos.SignOffRepo
	Closure   repos.ClosureRepo
	Lead      repos.LeadRepo
	Product   repos.ProductRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:      repos.NewUserRepo(db, log),
		UserToken: repos.NewUserTokenRepo(db, log),
		Project:   repos.NewProjectRepo(db, log),
		Contact:   repos.NewContactRepo(db, log),
		File:      repos.NewFileObjectRepo(db, log),
		Milestone: repos.NewMilestoneRepo(db, log),
		Material:  repos.NewMaterialRepo(db, log),
		Design:    repos.NewDesignRepo(db, log),
		Media:     repos.NewMediaRepo(db, log),
		Invoice:   repos.NewInvoiceRepo(db, log),
		Permit:    repos.NewPermitRepo(db, log),
		SignOff:   repos.NewSignOffRepo(db, log),
		Closure:   repos.NewClosureRepo(db, log),
		Lead:      repos.NewLeadRepo(db, log),
		Product:   repos.NewProductRepo(db, log),
	}
}
