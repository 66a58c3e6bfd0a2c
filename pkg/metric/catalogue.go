package metric

import (
	"strings"

	"github.com/yairfalse/onevision/pkg/resource"
)

// Kind is the statistics discriminant.
type Kind string

const (
	KindGlobalSummary    Kind = "GLOBAL_SUMMARY"
	KindEC2Health        Kind = "EC2_HEALTH"
	KindRDSHealth        Kind = "RDS_HEALTH"
	KindCostOptimization Kind = "COST_OPTIMIZATION"
	KindSecuritySummary  Kind = "SECURITY_SUMMARY"
	KindStorageSummary   Kind = "STORAGE_SUMMARY"
)

// Legacy nested blocks and the flat prefix each one lifts into.
var legacyBlocks = []struct {
	field  string
	prefix string
}{
	{"byState", "byState"},
	{"instanceStates", "byState"},
	{"healthStatus", "healthStatus"},
	{"cloudwatchAgent", "cloudwatchAgent"},
	{"ssmAgent", "ssmAgent"},
}

// flatPrefixes mark flattened names that are numeric even when the
// catalogue does not list the exact suffix, such as a new instance state.
var flatPrefixes = []string{
	"resourceCounts_", "byState_", "healthStatus_", "cloudwatchAgent_",
	"ssmAgent_", "rds_", "cost_", "security_", "storage_",
}

var commonNames = []string{
	"totalResources",
	"resourcesProcessed",
	"collectionDuration",
}

var kindNames = map[Kind][]string{
	KindGlobalSummary: nil, // resource counts, appended in init
	KindEC2Health: {
		"total",
		"byState_running", "byState_stopped", "byState_pending",
		"byState_stopping", "byState_shutting_down", "byState_terminated",
		"healthStatus_Healthy", "healthStatus_Impaired", "healthStatus_Unknown",
		"cloudwatchAgent_memoryMonitoring", "cloudwatchAgent_diskMonitoring",
		"cloudwatchAgent_percentageWithMemory", "cloudwatchAgent_percentageWithDisk",
		"ssmAgent_connected", "ssmAgent_percentageConnected",
	},
	KindRDSHealth: {
		"rds_totalInstances", "rds_available", "rds_multiAZ",
		"rds_performanceInsightsEnabled", "rds_allocatedStorageGiB",
		"rds_snapshots", "rds_clusterSnapshots",
	},
	KindCostOptimization: {
		"cost_unattachedVolumes", "cost_unattachedVolumesGiB",
		"cost_unassociatedElasticIps", "cost_stoppedInstances",
		"cost_oldSnapshots", "cost_idleLoadBalancers",
		"cost_estimatedMonthlySavings",
	},
	KindSecuritySummary: {
		"security_exposedSecurityGroups", "security_allPortsExposed",
		"security_unencryptedVolumes", "security_unencryptedSnapshots",
		"security_publicBuckets", "security_defaultVpcs",
		"security_flowLogsDisabled",
	},
	KindStorageSummary: {
		"storage_s3Buckets", "storage_s3Objects", "storage_s3TotalBytes",
		"storage_ebsVolumes", "storage_ebsTotalGiB",
		"storage_efsFileSystems", "storage_fsxFileSystems",
		"storage_backupVaults", "storage_recoveryPoints",
	},
}

// catalogue is every flat name any kind enumerates.
var catalogue = map[string]bool{}

func init() {
	for _, k := range resource.Kinds() {
		kindNames[KindGlobalSummary] = append(kindNames[KindGlobalSummary], ResourceCountName(string(k)))
	}
	for _, n := range commonNames {
		catalogue[n] = true
	}
	for _, names := range kindNames {
		for _, n := range names {
			catalogue[n] = true
		}
	}
}

// ResourceCountName is the flat name of a per-kind resource count.
func ResourceCountName(kind string) string {
	return "resourceCounts_" + kind
}

// Catalogue returns the names a metric of kind k always carries once
// normalized. Unknown kinds carry only the common names.
func Catalogue(k Kind) []string {
	names := make([]string, 0, len(commonNames)+len(kindNames[k]))
	names = append(names, commonNames...)
	return append(names, kindNames[k]...)
}

// IsNumericName reports whether name is coerced as a number.
func IsNumericName(name string) bool {
	if catalogue[name] {
		return true
	}
	for _, p := range flatPrefixes {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			return true
		}
	}
	return false
}

// FlatName joins a nested path with underscores. Dots and hyphens in the
// path collapse to underscores too.
func FlatName(path ...string) string {
	return flatten(strings.Join(path, "_"))
}

func flatten(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(name)
}
