package resource

import "time"

func init() {
	register(KindS3Bucket, shapeS3Bucket)
	register(KindEFSFileSystem, shapeEFSFileSystem)
	register(KindFSxFileSystem, shapeFSxFileSystem)
	register(KindBackupPlan, shapeBackupPlan)
	register(KindBackupVault, shapeBackupVault)
}

// S3Bucket is an object storage bucket. The collector writes storageBytes
// either as a byte count or as a human readable size such as "59.28 TB";
// the two land in StorageBytes and StorageHuman respectively.
type S3Bucket struct {
	Base
	BucketName        *string  `json:"bucketName,omitempty"`
	HasLifecycleRules *bool    `json:"hasLifecycleRules,omitempty"`
	StorageBytes      *float64 `json:"storageBytes,omitempty"`
	StorageHuman      *string  `json:"storageHuman,omitempty"`
	ObjectCount       *int64   `json:"objectCount,omitempty"`
	Versioning        *string  `json:"versioning,omitempty"`
	Encryption        *string  `json:"encryption,omitempty"`
	PublicAccess      *bool    `json:"publicAccess,omitempty"`
}

func (*S3Bucket) isResource() {}

func shapeS3Bucket(b Base, f fields) Resource {
	b.nameFrom(f, "bucketNameTag", "bucketName")
	r := &S3Bucket{
		Base:              b,
		BucketName:        f.str("bucketName"),
		HasLifecycleRules: f.boolean("hasLifecycleRules"),
		ObjectCount:       f.count("objectCount"),
		Versioning:        f.str("versioning", "versioningStatus"),
		Encryption:        f.str("encryption", "encryptionType"),
		PublicAccess:      f.boolean("publicAccess", "isPublic"),
	}
	r.StorageBytes, r.StorageHuman = f.measure("storageBytes")
	return r
}

// EFSFileSystem is an elastic file system.
type EFSFileSystem struct {
	Base
	FileSystemID                 *string  `json:"fileSystemId,omitempty"`
	PerformanceMode              *string  `json:"performanceMode,omitempty"`
	ThroughputMode               *string  `json:"throughputMode,omitempty"`
	ProvisionedThroughputInMibps *float64 `json:"provisionedThroughputInMibps,omitempty"`
	SizeInBytes                  *float64 `json:"sizeInBytes,omitempty"`
	SizeHuman                    *string  `json:"sizeHuman,omitempty"`
	MountTargetsCount            *int64   `json:"mountTargetsCount,omitempty"`
	LifecyclePolicies            []string `json:"lifecyclePolicies,omitempty"`
	BackupPolicyStatus           *string  `json:"backupPolicyStatus,omitempty"`
}

func (*EFSFileSystem) isResource() {}

func shapeEFSFileSystem(b Base, f fields) Resource {
	b.nameFrom(f, "fileSystemName")
	r := &EFSFileSystem{
		Base:                         b,
		FileSystemID:                 f.str("fileSystemId"),
		PerformanceMode:              f.str("performanceMode"),
		ThroughputMode:               f.str("throughputMode"),
		ProvisionedThroughputInMibps: f.num("provisionedThroughputInMibps"),
		MountTargetsCount:            f.count("mountTargetsCount"),
		LifecyclePolicies:            f.list("lifecyclePolicies"),
		BackupPolicyStatus:           f.str("backupPolicyStatus"),
	}
	r.SizeInBytes, r.SizeHuman = f.measure("sizeInBytes")
	return r
}

// FSxFileSystem is a managed FSx file system of any flavour.
type FSxFileSystem struct {
	Base
	FileSystemID                  *string  `json:"fileSystemId,omitempty"`
	FileSystemType                *string  `json:"fileSystemType,omitempty"`
	Lifecycle                     *string  `json:"lifecycle,omitempty"`
	StorageCapacity               *float64 `json:"storageCapacity,omitempty"`
	DeploymentType                *string  `json:"deploymentType,omitempty"`
	ThroughputCapacity            *float64 `json:"throughputCapacity,omitempty"`
	AutomaticBackupRetentionDays  *int64   `json:"automaticBackupRetentionDays,omitempty"`
	DailyAutomaticBackupStartTime *string  `json:"dailyAutomaticBackupStartTime,omitempty"`
	CopyTagsToBackups             *bool    `json:"copyTagsToBackups,omitempty"`
}

func (*FSxFileSystem) isResource() {}

func shapeFSxFileSystem(b Base, f fields) Resource {
	b.nameFrom(f, "fileSystemName")
	return &FSxFileSystem{
		Base:                          b,
		FileSystemID:                  f.str("fileSystemId"),
		FileSystemType:                f.str("fileSystemType"),
		Lifecycle:                     f.str("lifecycle"),
		StorageCapacity:               f.num("storageCapacity"),
		DeploymentType:                f.str("deploymentType"),
		ThroughputCapacity:            f.num("throughputCapacity"),
		AutomaticBackupRetentionDays:  f.count("automaticBackupRetentionDays"),
		DailyAutomaticBackupStartTime: f.str("dailyAutomaticBackupStartTime"),
		CopyTagsToBackups:             f.boolean("copyTagsToBackups"),
	}
}

// BackupPlan is an AWS Backup plan summarised by its first rule.
type BackupPlan struct {
	Base
	BackupPlanID           *string    `json:"backupPlanId,omitempty"`
	BackupPlanName         *string    `json:"backupPlanName,omitempty"`
	LastExecutionDate      *time.Time `json:"lastExecutionDate,omitempty"`
	Schedules              []string   `json:"schedules,omitempty"`
	WindowStart            *int64     `json:"windowStart,omitempty"`
	WindowDuration         *int64     `json:"windowDuration,omitempty"`
	TargetBackupVault      *string    `json:"targetBackupVault,omitempty"`
	SelectionResourceTypes []string   `json:"selectionResourceTypes,omitempty"`
}

func (*BackupPlan) isResource() {}

func shapeBackupPlan(b Base, f fields) Resource {
	b.nameFrom(f, "backupPlanName")
	return &BackupPlan{
		Base:                   b,
		BackupPlanID:           f.str("backupPlanId"),
		BackupPlanName:         f.str("backupPlanName"),
		LastExecutionDate:      f.timePtr("lastExecutionDate"),
		Schedules:              f.list("schedules", "schedule"),
		WindowStart:            f.count("windowStart"),
		WindowDuration:         f.count("windowDuration"),
		TargetBackupVault:      f.str("targetBackupVault"),
		SelectionResourceTypes: f.list("selectionResourceTypes"),
	}
}

// BackupVault is an AWS Backup vault with recovery point statistics.
// LatestRecoveryPointAgeDays is -1 when the vault holds no recovery points.
type BackupVault struct {
	Base
	BackupVaultName            *string `json:"backupVaultName,omitempty"`
	EncryptionKeyARN           *string `json:"encryptionKeyArn,omitempty"`
	Locked                     *bool   `json:"locked,omitempty"`
	NumberOfRecoveryPoints     *int64  `json:"numberOfRecoveryPoints,omitempty"`
	LatestRecoveryPointAgeDays *int64  `json:"latestRecoveryPointAgeDays,omitempty"`
}

func (*BackupVault) isResource() {}

func shapeBackupVault(b Base, f fields) Resource {
	b.nameFrom(f, "backupVaultName")
	return &BackupVault{
		Base:                       b,
		BackupVaultName:            f.str("backupVaultName"),
		EncryptionKeyARN:           f.str("encryptionKeyArn"),
		Locked:                     f.boolean("locked"),
		NumberOfRecoveryPoints:     f.count("numberOfRecoveryPoints"),
		LatestRecoveryPointAgeDays: f.count("latestRecoveryPointAgeDays"),
	}
}
