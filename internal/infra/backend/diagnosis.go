package backend

import (
	"context"

	"shamba/internal/domain/entity"
	"shamba/internal/domain/service"

	"github.com/google/uuid"
)

// Diagnose analyzes a crop image. The outcome is one of the canned fixtures,
// chosen by the injected picker so tests can pin the selection.
func (a *Adapter) Diagnose(ctx context.Context, req entity.DiagnosisRequest) service.Response[entity.DiagnosisResult] {
	if err := a.delay(ctx, a.diagnosisLatency); err != nil {
		return service.Fail[entity.DiagnosisResult](service.ReasonCancelled)
	}

	if req.ImageURI == "" {
		return service.Fail[entity.DiagnosisResult]("An image is required for diagnosis.")
	}

	fixture := diagnosisFixtures[a.picker.Pick(len(diagnosisFixtures))]

	result := entity.DiagnosisResult{
		ID:                  uuid.NewString(),
		CropName:            fixture.cropName,
		Issue:               fixture.issue,
		Severity:            fixture.severity,
		Confidence:          fixture.confidence,
		Advice:              fixture.advice,
		RecommendedProducts: fixture.recommendedProducts,
		ImageURI:            req.ImageURI,
		CreatedAt:           a.clock(),
	}

	return service.Ok(result, "Diagnosis completed successfully")
}

// GetDiagnosisHistory returns the seeded past diagnoses for the user.
func (a *Adapter) GetDiagnosisHistory(ctx context.Context, _ string) service.Response[[]entity.DiagnosisResult] {
	if err := a.delay(ctx, a.fetchLatency); err != nil {
		return service.Fail[[]entity.DiagnosisResult](service.ReasonCancelled)
	}

	return service.Ok(seededDiagnosisHistory(a.clock()), "")
}
