package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
)

const dateLayout = "2006-01-02"

var (
	projectCodePattern = regexp.MustCompile(`^[A-Z]{2,4}-[0-9]{4,6}$`)
	phonePattern       = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)
)

// fieldErrors accumulates per-field validation detail so a single response
// can pinpoint everything wrong with the request.
type fieldErrors map[string]string

func (fe fieldErrors) add(field, msg string) {
	if _, dup := fe[field]; !dup {
		fe[field] = msg
	}
}

func (fe fieldErrors) err() *apierr.Error {
	if len(fe) == 0 {
		return nil
	}
	return apierr.NewValidation(fe)
}

func parseDate(value string) (*datatypes.Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("must be a YYYY-MM-DD date")
	}
	d := datatypes.Date(t)
	return &d, nil
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

func (fe fieldErrors) checkDate(field string, value *string) *datatypes.Date {
	if value == nil {
		return nil
	}
	d, err := parseDate(*value)
	if err != nil {
		fe.add(field, err.Error())
		return nil
	}
	return d
}

func (fe fieldErrors) checkContact(field string, in *ContactInput) {
	if in == nil {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		fe.add(field+".name", "is required")
	}
	if in.Phone != nil && *in.Phone != "" && !phonePattern.MatchString(*in.Phone) {
		fe.add(field+".phone", "is not a valid phone number")
	}
	if in.Email != nil && *in.Email != "" && !strings.Contains(*in.Email, "@") {
		fe.add(field+".email", "is not a valid email address")
	}
}

func (fe fieldErrors) checkFile(field string, in *FileInput) {
	if in == nil {
		return
	}
	if strings.TrimSpace(in.URL) == "" {
		fe.add(field+".url", "is required")
	}
}

func (fe fieldErrors) checkFiles(field string, in *[]FileInput) {
	if in == nil {
		return
	}
	for i := range *in {
		fe.checkFile(fmt.Sprintf("%s[%d]", field, i), &(*in)[i])
	}
}

func (fe fieldErrors) checkMilestones(field string, in *[]MilestoneInput) {
	if in == nil {
		return
	}
	for i, m := range *in {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(m.Label) == "" {
			fe.add(prefix+".label", "is required")
		}
		if m.Amount < 0 {
			fe.add(prefix+".amount", "must be non-negative")
		}
		if m.Status != nil {
			if _, ok := domain.PaymentStatusCode(*m.Status); !ok {
				fe.add(prefix+".status", "must be one of: "+strings.Join(domain.PaymentStatusLabels, ", "))
			}
		}
		fe.checkDate(prefix+".due_date", m.DueDate)
	}
}

func (fe fieldErrors) checkMaterials(field string, in *[]MaterialInput) {
	if in == nil {
		return
	}
	for i, m := range *in {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(m.Type) == "" {
			fe.add(prefix+".type", "is required")
		}
		if m.Status != nil {
			if _, ok := domain.MaterialStatusCode(*m.Status); !ok {
				fe.add(prefix+".status", "must be one of: "+strings.Join(domain.MaterialStatusLabels, ", "))
			}
		}
	}
}

func (fe fieldErrors) checkDesigns(field string, in *[]DesignInput) {
	if in == nil {
		return
	}
	for i, d := range *in {
		if strings.TrimSpace(d.URL) == "" {
			fe.add(fmt.Sprintf("%s[%d].url", field, i), "is required")
		}
	}
}

func (fe fieldErrors) checkMedia(field string, in *[]MediaInput) {
	if in == nil {
		return
	}
	for i, m := range *in {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if _, ok := domain.MediaKindCode(m.Kind); !ok {
			fe.add(prefix+".kind", "must be one of: "+strings.Join(domain.MediaKindLabels, ", "))
		}
		if strings.TrimSpace(m.URL) == "" {
			fe.add(prefix+".url", "is required")
		}
	}
}

func (fe fieldErrors) checkClosure(field string, in *ClosureInput) {
	if in == nil {
		return
	}
	fe.checkMedia(field+".final_media", in.FinalMedia)
	fe.checkFile(field+".certificate", in.Certificate)
	fe.checkFile(field+".warranty", in.Warranty)
	fe.checkContact(field+".after_sales", in.AfterSales)
	fe.checkDate(field+".handover_date", in.HandoverDate)
	fe.checkDate(field+".follow_up_date", in.FollowUpDate)
}

func validateCreateInput(input *ProjectCreateInput) *apierr.Error {
	fe := fieldErrors{}
	if input == nil {
		fe.add("body", "is required")
		return fe.err()
	}
	if input.Code != nil && !projectCodePattern.MatchString(*input.Code) {
		fe.add("code", "must match 2-4 uppercase letters, a hyphen, and 4-6 digits")
	}
	if strings.TrimSpace(input.Address) == "" {
		fe.add("address", "is required")
	}
	if strings.TrimSpace(input.Type) == "" {
		fe.add("type", "is required")
	}
	if input.Status != nil {
		if _, ok := domain.ProjectStatusCode(*input.Status); !ok {
			fe.add("status", "must be one of: "+strings.Join(domain.ProjectStatusLabels, ", "))
		}
	}
	fe.checkDate("start_date", input.StartDate)
	fe.checkDate("eta", input.ETA)
	if input.Discount != nil && *input.Discount < 0 {
		fe.add("discount", "must be non-negative")
	}
	if input.ExtraCharge != nil && *input.ExtraCharge < 0 {
		fe.add("extra_charge", "must be non-negative")
	}
	fe.checkContact("salesperson", input.Salesperson)
	fe.checkContact("designer", input.Designer)
	fe.checkContact("contractor", input.Contractor)
	fe.checkFile("quotation_file", input.QuotationFile)
	fe.checkMilestones("milestones", input.Milestones)
	fe.checkMaterials("materials", input.Materials)
	fe.checkDesigns("designs", input.Designs)
	fe.checkMedia("media", input.Media)
	fe.checkFiles("invoices", input.Invoices)
	fe.checkFiles("permits", input.Permits)
	fe.checkFiles("sign_offs", input.SignOffs)
	fe.checkClosure("closure", input.Closure)
	return fe.err()
}

func validateUpdateInput(input *ProjectUpdateInput) *apierr.Error {
	fe := fieldErrors{}
	if input == nil {
		fe.add("body", "is required")
		return fe.err()
	}
	if input.Address != nil && strings.TrimSpace(*input.Address) == "" {
		fe.add("address", "cannot be empty")
	}
	if input.Type != nil && strings.TrimSpace(*input.Type) == "" {
		fe.add("type", "cannot be empty")
	}
	if input.Status != nil {
		if _, ok := domain.ProjectStatusCode(*input.Status); !ok {
			fe.add("status", "must be one of: "+strings.Join(domain.ProjectStatusLabels, ", "))
		}
	}
	fe.checkDate("start_date", input.StartDate)
	fe.checkDate("eta", input.ETA)
	if input.Discount != nil && *input.Discount < 0 {
		fe.add("discount", "must be non-negative")
	}
	if input.ExtraCharge != nil && *input.ExtraCharge < 0 {
		fe.add("extra_charge", "must be non-negative")
	}
	fe.checkContact("salesperson", input.Salesperson)
	fe.checkContact("designer", input.Designer)
	fe.checkContact("contractor", input.Contractor)
	fe.checkFile("quotation_file", input.QuotationFile)
	fe.checkMilestones("milestones", input.Milestones)
	fe.checkMaterials("materials", input.Materials)
	fe.checkDesigns("designs", input.Designs)
	fe.checkMedia("media", input.Media)
	fe.checkFiles("invoices", input.Invoices)
	fe.checkFiles("permits", input.Permits)
	fe.checkFiles("sign_offs", input.SignOffs)
	fe.checkClosure("closure", input.Closure)
	return fe.err()
}

func validateMilestoneInput(in *MilestoneInput) *apierr.Error {
	fe := fieldErrors{}
	if in == nil {
		fe.add("body", "is required")
		return fe.err()
	}
	list := []MilestoneInput{*in}
	fe.checkMilestones("milestone", &list)
	// strip the index prefix for a single-item payload
	cleaned := fieldErrors{}
	for k, v := range fe {
		cleaned[strings.Replace(k, "milestone[0]", "milestone", 1)] = v
	}
	return cleaned.err()
}

func validateMilestoneUpdateInput(in *MilestoneUpdateInput) *apierr.Error {
	fe := fieldErrors{}
	if in == nil {
		fe.add("body", "is required")
		return fe.err()
	}
	if in.Label != nil && strings.TrimSpace(*in.Label) == "" {
		fe.add("label", "cannot be empty")
	}
	if in.Amount != nil && *in.Amount < 0 {
		fe.add("amount", "must be non-negative")
	}
	if in.Status != nil {
		if _, ok := domain.PaymentStatusCode(*in.Status); !ok {
			fe.add("status", "must be one of: "+strings.Join(domain.PaymentStatusLabels, ", "))
		}
	}
	fe.checkDate("due_date", in.DueDate)
	return fe.err()
}
