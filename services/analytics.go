package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"farmhub/backend/database"
	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/store"
)

// dashCache serves the dashboard from recent snapshots so one summary request
// does not refetch all seven collections.
var dashCache *store.Cache

// warm refetches invalidated collections in the background once a burst of
// writes quiesces, so the next dashboard read after a batch operation is
// served from a fresh snapshot instead of paying the fetch itself.
var (
	warm      *pipeline.Debouncer
	warmAfter = 2 * time.Second

	warmMu      sync.Mutex
	warmPending map[string]struct{}
)

// InitAnalytics wires the dashboard cache to the active record store. maxAge
// bounds how stale a dashboard read may be.
func InitAnalytics(s store.RecordStore, maxAge time.Duration) {
	if warm != nil {
		warm.Stop()
	}
	dashCache = store.NewCache(s, maxAge)
	warm = pipeline.NewDebouncer(warmAfter)
	warmPending = make(map[string]struct{})
}

// StopAnalytics cancels any pending background re-warm. Called on teardown.
func StopAnalytics() {
	if warm != nil {
		warm.Stop()
	}
}

// InvalidateDashboard drops the cached snapshot for a collection after a
// write so the next dashboard read reflects it, and schedules a debounced
// re-warm: a batch of writes coalesces into one refetch per collection.
func InvalidateDashboard(collection string) {
	if dashCache == nil {
		return
	}
	dashCache.Invalidate(collection)

	warmMu.Lock()
	warmPending[collection] = struct{}{}
	warmMu.Unlock()

	warm.Trigger(func() {
		warmMu.Lock()
		pending := warmPending
		warmPending = make(map[string]struct{})
		warmMu.Unlock()

		for c := range pending {
			if _, err := dashCache.Fetch(context.Background(), c); err != nil {
				log.Printf("Failed to warm %s snapshot: %v", c, err)
			}
		}
	})
}

// TargetProgress is one program goal with its achieved value.
type TargetProgress struct {
	Metric   string  `json:"metric"`
	Label    string  `json:"label"`
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
	Percent  float64 `json:"percent"`
}

// RegionStats is the per-region slice of the dashboard.
type RegionStats struct {
	LivestockFarmers  float64 `json:"livestockFarmers"`
	FodderFarmers     float64 `json:"fodderFarmers"`
	Boreholes         float64 `json:"boreholes"`
	AnimalsVaccinated float64 `json:"animalsVaccinated"`
	FarmersTrained    float64 `json:"farmersTrained"`
	OfftakeValue      float64 `json:"offtakeValue"`
}

// DashboardSummary is the cross-collection analytics payload.
type DashboardSummary struct {
	Totals      map[string]float64     `json:"totals"`
	Regions     map[string]RegionStats `json:"regions"`
	GenderSplit map[string]float64     `json:"genderSplit"`
	Targets     []TargetProgress       `json:"targets"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// BuildDashboard assembles the program-wide summary from the current
// snapshots of every collection.
func BuildDashboard(ctx context.Context) (*DashboardSummary, error) {
	if dashCache == nil {
		return nil, fmt.Errorf("analytics not initialized")
	}

	livestockDocs, err := dashCache.Fetch(ctx, models.CollectionLivestockFarmers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch livestock farmers: %w", err)
	}
	fodderDocs, err := dashCache.Fetch(ctx, models.CollectionFodderFarmers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fodder farmers: %w", err)
	}
	boreholeDocs, err := dashCache.Fetch(ctx, models.CollectionBoreholes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boreholes: %w", err)
	}
	vaccinationDocs, err := dashCache.Fetch(ctx, models.CollectionVaccinations)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vaccination activities: %w", err)
	}
	trainingDocs, err := dashCache.Fetch(ctx, models.CollectionTrainings)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch training sessions: %w", err)
	}
	offtakeDocs, err := dashCache.Fetch(ctx, models.CollectionOfftakes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offtake transactions: %w", err)
	}
	onboardingDocs, err := dashCache.Fetch(ctx, models.CollectionOnboardings)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch onboarding sessions: %w", err)
	}

	summary := &DashboardSummary{
		Totals:      make(map[string]float64),
		Regions:     make(map[string]RegionStats),
		GenderSplit: make(map[string]float64),
		GeneratedAt: time.Now(),
	}

	var animalsVaccinated, farmersTrained, offtakeValue float64

	for _, d := range livestockDocs {
		f := models.LivestockFarmerFromDoc(d)
		bump(summary, f.Region, func(rs *RegionStats) { rs.LivestockFarmers++ })
		countGender(summary, f.Gender)
	}
	for _, d := range fodderDocs {
		f := models.FodderFarmerFromDoc(d)
		bump(summary, f.Region, func(rs *RegionStats) { rs.FodderFarmers++ })
		countGender(summary, f.Gender)
	}
	for _, d := range boreholeDocs {
		b := models.BoreholeFromDoc(d)
		bump(summary, b.Region, func(rs *RegionStats) { rs.Boreholes++ })
	}
	for _, d := range vaccinationDocs {
		v := models.VaccinationFromDoc(d)
		animalsVaccinated += v.AnimalsVaccinated
		bump(summary, v.Region, func(rs *RegionStats) { rs.AnimalsVaccinated += v.AnimalsVaccinated })
	}
	for _, d := range trainingDocs {
		t := models.TrainingFromDoc(d)
		trained := t.MaleCount + t.FemaleCount
		farmersTrained += trained
		bump(summary, t.Region, func(rs *RegionStats) { rs.FarmersTrained += trained })
	}
	for _, d := range offtakeDocs {
		o := models.OfftakeFromDoc(d)
		offtakeValue += o.TotalValue
		bump(summary, o.Region, func(rs *RegionStats) { rs.OfftakeValue += o.TotalValue })
	}

	summary.Totals["livestockFarmers"] = float64(len(livestockDocs))
	summary.Totals["fodderFarmers"] = float64(len(fodderDocs))
	summary.Totals["boreholes"] = float64(len(boreholeDocs))
	summary.Totals["vaccinationActivities"] = float64(len(vaccinationDocs))
	summary.Totals["trainingSessions"] = float64(len(trainingDocs))
	summary.Totals["offtakeTransactions"] = float64(len(offtakeDocs))
	summary.Totals["onboardingSessions"] = float64(len(onboardingDocs))
	summary.Totals["animalsVaccinated"] = animalsVaccinated
	summary.Totals["farmersTrained"] = farmersTrained
	summary.Totals["offtakeValue"] = offtakeValue
	summary.Totals["regions"] = float64(len(summary.Regions))

	targets, err := GetProgramTargets()
	if err != nil {
		return nil, fmt.Errorf("failed to load program targets: %w", err)
	}
	for _, t := range targets {
		achieved := summary.Totals[t.Metric]
		summary.Targets = append(summary.Targets, TargetProgress{
			Metric:   t.Metric,
			Label:    t.Label,
			Target:   t.Target,
			Achieved: achieved,
			Percent:  pipeline.Percentage(achieved, t.Target),
		})
	}

	return summary, nil
}

func bump(s *DashboardSummary, region string, update func(*RegionStats)) {
	key := strings.TrimSpace(region)
	if key == "" {
		key = "Unspecified"
	}
	rs := s.Regions[key]
	update(&rs)
	s.Regions[key] = rs
}

func countGender(s *DashboardSummary, gender string) {
	g := strings.ToLower(strings.TrimSpace(gender))
	switch g {
	case "male", "m":
		s.GenderSplit["male"]++
	case "female", "f":
		s.GenderSplit["female"]++
	default:
		s.GenderSplit["unspecified"]++
	}
}

// GetProgramTargets reads the program targets from the local database.
func GetProgramTargets() ([]models.ProgramTarget, error) {
	rows, err := database.DB.Query("SELECT metric, label, target FROM program_targets ORDER BY metric")
	if err != nil {
		return nil, fmt.Errorf("failed to query program targets: %w", err)
	}
	defer rows.Close()

	var targets []models.ProgramTarget
	for rows.Next() {
		var t models.ProgramTarget
		if err := rows.Scan(&t.Metric, &t.Label, &t.Target); err != nil {
			return nil, fmt.Errorf("failed to scan program target: %w", err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// SetProgramTarget updates one target value.
func SetProgramTarget(metric string, target float64) error {
	result, err := database.DB.Exec("UPDATE program_targets SET target = ? WHERE metric = ?", target, metric)
	if err != nil {
		return fmt.Errorf("failed to update program target: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("unknown target metric: %s", metric)
	}
	return nil
}
