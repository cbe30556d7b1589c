package entities

// WarrantyStage is one step of the warranty claim lifecycle.
//
// Topology:
//
//	opened -> in_analysis -> inspection_scheduled -> inspection_completed
//	inspection_completed -> approved | rejected
//	approved -> in_execution -> completed
//
// rejected and completed are final.
type WarrantyStage string

const (
	WarrantyStageOpened              WarrantyStage = "opened"
	WarrantyStageInAnalysis          WarrantyStage = "in_analysis"
	WarrantyStageInspectionScheduled WarrantyStage = "inspection_scheduled"
	WarrantyStageInspectionCompleted WarrantyStage = "inspection_completed"
	WarrantyStageApproved            WarrantyStage = "approved"
	WarrantyStageRejected            WarrantyStage = "rejected"
	WarrantyStageInExecution         WarrantyStage = "in_execution"
	WarrantyStageCompleted           WarrantyStage = "completed"
)

// StageDefinition is the static registry row of a stage.
type StageDefinition struct {
	Stage       WarrantyStage
	Label       string
	Description string
	Order       int
	IsFinal     bool
}

// flowOrder is the main path used to resolve "order + 1" successors.
// rejected is reachable only through the inspection_completed fork.
var flowOrder = []WarrantyStage{
	WarrantyStageOpened,
	WarrantyStageInAnalysis,
	WarrantyStageInspectionScheduled,
	WarrantyStageInspectionCompleted,
	WarrantyStageApproved,
	WarrantyStageInExecution,
	WarrantyStageCompleted,
}

// AllStages returns every stage in board order (rejected last).
func AllStages() []WarrantyStage {
	out := make([]WarrantyStage, 0, len(flowOrder)+1)
	out = append(out, flowOrder...)
	return append(out, WarrantyStageRejected)
}

// Definition returns the registry row for s. Every stage must have a case here.
func (s WarrantyStage) Definition() (StageDefinition, bool) {
	switch s {
	case WarrantyStageOpened:
		return StageDefinition{s, "Solicitação Aberta", "Sua solicitação foi registrada e está na fila de análise", 1, false}, true
	case WarrantyStageInAnalysis:
		return StageDefinition{s, "Em Análise", "A equipe técnica está analisando sua solicitação", 2, false}, true
	case WarrantyStageInspectionScheduled:
		return StageDefinition{s, "Vistoria Agendada", "Uma vistoria técnica foi agendada para seu imóvel", 3, false}, true
	case WarrantyStageInspectionCompleted:
		return StageDefinition{s, "Vistoria Realizada", "A vistoria foi concluída e está aguardando decisão", 4, false}, true
	case WarrantyStageApproved:
		return StageDefinition{s, "Aprovada", "Sua solicitação foi aprovada e será executada", 5, false}, true
	case WarrantyStageRejected:
		return StageDefinition{s, "Reprovada", "Sua solicitação foi analisada e não foi aprovada", 5, true}, true
	case WarrantyStageInExecution:
		return StageDefinition{s, "Em Execução", "O reparo está em andamento", 6, false}, true
	case WarrantyStageCompleted:
		return StageDefinition{s, "Finalizada", "A garantia foi executada com sucesso", 7, true}, true
	}
	return StageDefinition{}, false
}

func (s WarrantyStage) IsValid() bool {
	_, ok := s.Definition()
	return ok
}

// Label falls back to the raw key for unknown stages.
func (s WarrantyStage) Label() string {
	if def, ok := s.Definition(); ok {
		return def.Label
	}
	return string(s)
}

func (s WarrantyStage) Order() int {
	def, _ := s.Definition()
	return def.Order
}

// IsFinalStage reports whether no transition may leave s.
func IsFinalStage(s WarrantyStage) bool {
	def, ok := s.Definition()
	return ok && def.IsFinal
}

// NextValidStages returns the stages reachable from current in one step.
func NextValidStages(current WarrantyStage) []WarrantyStage {
	def, ok := current.Definition()
	if !ok || def.IsFinal {
		return nil
	}
	if current == WarrantyStageInspectionCompleted {
		return []WarrantyStage{WarrantyStageApproved, WarrantyStageRejected}
	}

	var next []WarrantyStage
	for _, s := range flowOrder {
		if s.Order() == def.Order+1 {
			next = append(next, s)
		}
	}
	return next
}

func IsValidTransition(from, to WarrantyStage) bool {
	for _, s := range NextValidStages(from) {
		if s == to {
			return true
		}
	}
	return false
}
