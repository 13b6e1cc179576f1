package metrics

import (
	"time"

	"livpulse/internal/common/models"
)

// PlatformMetrics is the health snapshot of one client platform.
type PlatformMetrics struct {
	Platform    string              `json:"platform"`
	Health      models.HealthStatus `json:"health"`
	Users       PlatformUsers       `json:"users"`
	Performance PlatformPerformance `json:"performance"`
	Features    PlatformFeatures    `json:"features"`
	Technical   PlatformTechnical   `json:"technical"`
	Business    PlatformBusiness    `json:"business"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

type PlatformUsers struct {
	Active    int     `json:"active"`
	Growth    float64 `json:"growth"`
	Retention float64 `json:"retention"`
}

type PlatformPerformance struct {
	ResponseTime float64 `json:"responseTime"`
	CrashRate    float64 `json:"crashRate"`
	LoadTime     float64 `json:"loadTime"`
	ErrorRate    float64 `json:"errorRate"`
}

type PlatformFeatures struct {
	Adoption       float64 `json:"adoption"`
	Satisfaction   float64 `json:"satisfaction"`
	CompletionRate float64 `json:"completionRate"`
}

type PlatformTechnical struct {
	Version      string  `json:"version"`
	Coverage     float64 `json:"coverage"`
	BuildSuccess float64 `json:"buildSuccess"`
	TestPass     float64 `json:"testPass"`
}

type PlatformBusiness struct {
	Revenue    float64 `json:"revenue"`
	Conversion float64 `json:"conversion"`
	Engagement float64 `json:"engagement"`
}

// PlatformTrend is one day of generated platform history.
type PlatformTrend struct {
	Date         string  `json:"date"`
	Users        int     `json:"users"`
	Performance  int     `json:"performance"`
	Revenue      int     `json:"revenue"`
	Satisfaction float64 `json:"satisfaction"`
}

// BackendMetrics is the health snapshot of one backend service.
type BackendMetrics struct {
	Service      string               `json:"service"`
	Status       models.ServiceStatus `json:"status"`
	Health       models.HealthStatus  `json:"health"`
	Performance  BackendPerformance   `json:"performance"`
	Resources    BackendResources     `json:"resources"`
	Scaling      BackendScaling       `json:"scaling"`
	Dependencies BackendDependencies  `json:"dependencies"`
	SLA          BackendSLA           `json:"sla"`
	LastUpdated  time.Time            `json:"lastUpdated"`
}

type BackendLatency struct {
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type BackendPerformance struct {
	Uptime       float64        `json:"uptime"`
	ResponseTime float64        `json:"responseTime"`
	Throughput   float64        `json:"throughput"`
	ErrorRate    float64        `json:"errorRate"`
	Latency      BackendLatency `json:"latency"`
}

type BackendResources struct {
	CPUUsage    float64 `json:"cpuUsage"`
	MemoryUsage float64 `json:"memoryUsage"`
	DiskUsage   float64 `json:"diskUsage"`
	NetworkIO   float64 `json:"networkIO"`
}

type BackendScaling struct {
	Instances   int     `json:"instances"`
	AutoScaling bool    `json:"autoScaling"`
	LoadBalance float64 `json:"loadBalance"`
	QueueDepth  int     `json:"queueDepth"`
}

type BackendDependencies struct {
	Database models.HealthStatus `json:"database"`
	Cache    models.HealthStatus `json:"cache"`
	External models.HealthStatus `json:"external"`
}

type BackendSLA struct {
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Breaches int     `json:"breaches"`
}

// BackendTrend is one day of generated service history.
type BackendTrend struct {
	Date         string  `json:"date"`
	Uptime       float64 `json:"uptime"`
	ResponseTime int     `json:"responseTime"`
	Throughput   int     `json:"throughput"`
	ErrorRate    float64 `json:"errorRate"`
}

// StoreMetrics is the health snapshot of one storefront.
type StoreMetrics struct {
	Platform    string              `json:"platform"`
	Health      models.HealthStatus `json:"health"`
	Performance StorePerformance    `json:"performance"`
	Business    StoreBusiness       `json:"business"`
	User        StoreUser           `json:"user"`
	Catalog     StoreCatalog        `json:"catalog"`
	Payments    StorePayments       `json:"payments"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

type StorePerformance struct {
	Uptime          float64 `json:"uptime"`
	ResponseTime    float64 `json:"responseTime"`
	ConversionRate  float64 `json:"conversionRate"`
	AbandonmentRate float64 `json:"abandonmentRate"`
	SearchAccuracy  float64 `json:"searchAccuracy"`
}

type StoreSubscriptions struct {
	New           int     `json:"new"`
	Renewals      int     `json:"renewals"`
	Cancellations int     `json:"cancellations"`
	Churn         float64 `json:"churn"`
}

type StoreBusiness struct {
	Revenue           float64            `json:"revenue"`
	Transactions      int                `json:"transactions"`
	AverageOrderValue float64            `json:"averageOrderValue"`
	Subscriptions     StoreSubscriptions `json:"subscriptions"`
}

type StoreUser struct {
	Sessions       int     `json:"sessions"`
	UniqueVisitors int     `json:"uniqueVisitors"`
	PageViews      int     `json:"pageViews"`
	BounceRate     float64 `json:"bounceRate"`
	TimeOnSite     float64 `json:"timeOnSite"`
}

type StoreCatalog struct {
	TotalItems  int `json:"totalItems"`
	ActiveItems int `json:"activeItems"`
	OutOfStock  int `json:"outOfStock"`
	NewReleases int `json:"newReleases"`
}

type StorePayments struct {
	SuccessRate           float64 `json:"successRate"`
	FailureRate           float64 `json:"failureRate"`
	AverageProcessingTime float64 `json:"averageProcessingTime"`
	FraudDetection        float64 `json:"fraudDetection"`
}

// StoreTrend is one day of generated storefront history.
type StoreTrend struct {
	Date           string  `json:"date"`
	Revenue        int     `json:"revenue"`
	Transactions   int     `json:"transactions"`
	ConversionRate float64 `json:"conversionRate"`
	Users          int     `json:"users"`
}

// CMSMetrics is the health snapshot of one content-management module.
type CMSMetrics struct {
	Module      string              `json:"module"`
	Health      models.HealthStatus `json:"health"`
	Performance CMSPerformance      `json:"performance"`
	Content     CMSContent          `json:"content"`
	Workflow    CMSWorkflow         `json:"workflow"`
	Users       CMSUsers            `json:"users"`
	Quality     CMSQuality          `json:"quality"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

type CMSPerformance struct {
	Uptime         float64 `json:"uptime"`
	ResponseTime   float64 `json:"responseTime"`
	Throughput     float64 `json:"throughput"`
	ErrorRate      float64 `json:"errorRate"`
	ProcessingTime float64 `json:"processingTime"`
}

type CMSContent struct {
	TotalAssets      int     `json:"totalAssets"`
	PublishedAssets  int     `json:"publishedAssets"`
	PendingApproval  int     `json:"pendingApproval"`
	FailedProcessing int     `json:"failedProcessing"`
	StorageUsed      float64 `json:"storageUsed"`
	StorageLimit     float64 `json:"storageLimit"`
}

type CMSWorkflow struct {
	ActiveWorkflows       int     `json:"activeWorkflows"`
	CompletedToday        int     `json:"completedToday"`
	AverageProcessingTime float64 `json:"averageProcessingTime"`
	Bottlenecks           int     `json:"bottlenecks"`
	AutomationRate        float64 `json:"automationRate"`
}

type CMSUsers struct {
	ActiveEditors      int     `json:"activeEditors"`
	TotalSessions      int     `json:"totalSessions"`
	AverageSessionTime float64 `json:"averageSessionTime"`
	ConcurrentUsers    int     `json:"concurrentUsers"`
}

type CMSQuality struct {
	MetadataCompleteness float64 `json:"metadataCompleteness"`
	AssetQualityScore    float64 `json:"assetQualityScore"`
	ComplianceRate       float64 `json:"complianceRate"`
	DuplicateDetection   float64 `json:"duplicateDetection"`
}

// CMSTrend is one day of generated content-pipeline history.
type CMSTrend struct {
	Date             string `json:"date"`
	AssetsProcessed  int    `json:"assetsProcessed"`
	PublishedContent int    `json:"publishedContent"`
	QualityScore     int    `json:"qualityScore"`
	ProcessingTime   int    `json:"processingTime"`
}

// OpsMetrics is the health snapshot of one operations category.
type OpsMetrics struct {
	Category    string              `json:"category"`
	Health      models.HealthStatus `json:"health"`
	Performance OpsPerformance      `json:"performance"`
	Capacity    OpsCapacity         `json:"capacity"`
	Incidents   OpsIncidents        `json:"incidents"`
	Costs       OpsCosts            `json:"costs"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

type OpsPerformance struct {
	Availability float64 `json:"availability"`
	ResponseTime float64 `json:"responseTime"`
	Throughput   float64 `json:"throughput"`
	ErrorRate    float64 `json:"errorRate"`
}

type OpsCapacity struct {
	Utilization float64 `json:"utilization"`
	Peak        float64 `json:"peak"`
	Reserved    float64 `json:"reserved"`
	Scaling     bool    `json:"scaling"`
}

type IncidentSeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

type OpsIncidents struct {
	Total    int                    `json:"total"`
	Resolved int                    `json:"resolved"`
	MTTR     float64                `json:"mttr"`
	Severity IncidentSeverityCounts `json:"severity"`
}

type OpsCosts struct {
	Current float64 `json:"current"`
	Budget  float64 `json:"budget"`
	Trend   float64 `json:"trend"`
}

// CDNRegion is per-region delivery health.
type CDNRegion struct {
	Name          string              `json:"name"`
	Health        models.HealthStatus `json:"health"`
	CacheHitRatio float64             `json:"cacheHitRatio"`
	Bandwidth     float64             `json:"bandwidth"`
	Requests      int                 `json:"requests"`
}

// CDNMetrics is the delivery-network snapshot.
type CDNMetrics struct {
	Provider    string         `json:"provider"`
	Regions     []CDNRegion    `json:"regions"`
	Performance CDNPerformance `json:"performance"`
	Costs       CDNCosts       `json:"costs"`
}

type CDNPerformance struct {
	GlobalLatency float64 `json:"globalLatency"`
	CacheHitRatio float64 `json:"cacheHitRatio"`
	Bandwidth     float64 `json:"bandwidth"`
	Requests      int     `json:"requests"`
}

type CDNCosts struct {
	Bandwidth float64 `json:"bandwidth"`
	Requests  float64 `json:"requests"`
	Storage   float64 `json:"storage"`
}

// DevOpsMetrics is the delivery-pipeline snapshot.
type DevOpsMetrics struct {
	Deployments    DevOpsDeployments    `json:"deployments"`
	Pipeline       DevOpsPipeline       `json:"pipeline"`
	Infrastructure DevOpsInfrastructure `json:"infrastructure"`
	Automation     DevOpsAutomation     `json:"automation"`
}

type DevOpsDeployments struct {
	Total      int     `json:"total"`
	Successful int     `json:"successful"`
	Failed     int     `json:"failed"`
	Rollbacks  int     `json:"rollbacks"`
	Frequency  float64 `json:"frequency"`
}

type DevOpsPipeline struct {
	BuildTime   float64 `json:"buildTime"`
	TestTime    float64 `json:"testTime"`
	DeployTime  float64 `json:"deployTime"`
	SuccessRate float64 `json:"successRate"`
}

type DevOpsInfrastructure struct {
	Servers    int `json:"servers"`
	Containers int `json:"containers"`
	Databases  int `json:"databases"`
	Queues     int `json:"queues"`
}

type DevOpsAutomation struct {
	Coverage         float64 `json:"coverage"`
	TestAutomation   float64 `json:"testAutomation"`
	DeployAutomation float64 `json:"deployAutomation"`
}
