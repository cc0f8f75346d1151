package usecase

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/converter"
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	"github.com/afiagithub/VitalCare-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	GetReportsForPatient(ctx context.Context, email string) (*dto.ReportListResponse, error)
	CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	log        *logrus.Logger
	reportRepo repository.ReportRepository
}

func NewReportUsecase(log *logrus.Logger, reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{
		log:        log,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) GetReportsForPatient(ctx context.Context, email string) (*dto.ReportListResponse, error) {
	reports, err := u.reportRepo.FindByPatientEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find reports for %s: %+v", email, err)
		return nil, err
	}

	responses := converter.ReportsToResponses(reports)
	return &dto.ReportListResponse{
		Reports: responses,
		Total:   len(responses),
	}, nil
}

func (u *reportUsecase) CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	report := &entity.Report{
		PatientEmail:  req.PatientEmail,
		ReservationID: req.ReservationID,
		Title:         req.Title,
		Details:       req.Details,
		ReportURL:     req.ReportURL,
		Date:          req.Date,
	}

	id, err := u.reportRepo.Insert(ctx, report)
	if err != nil {
		u.log.Warnf("Failed to insert report: %+v", err)
		return nil, err
	}
	report.ID = id

	u.log.Infof("Report created: id=%s, patient=%s", id.Hex(), report.PatientEmail)
	return converter.ReportToResponse(report), nil
}
