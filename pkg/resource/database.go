package resource

func init() {
	register(KindRDSInstance, shapeRDSInstance)
	register(KindRDSSnapshot, shapeRDSSnapshot)
	register(KindRDSClusterSnapshot, shapeRDSClusterSnapshot)
}

// RDSInstance is a managed database instance.
type RDSInstance struct {
	Base
	DBInstanceID               *string  `json:"dbInstanceId,omitempty"`
	DBInstanceARN              *string  `json:"dbInstanceArn,omitempty"`
	Engine                     *string  `json:"engine,omitempty"`
	EngineVersion              *string  `json:"engineVersion,omitempty"`
	Status                     *string  `json:"status,omitempty"`
	StorageType                *string  `json:"storageType,omitempty"`
	AllocatedStorage           *float64 `json:"allocatedStorage,omitempty"`
	MultiAZ                    *bool    `json:"multiAZ,omitempty"`
	InstanceClass              *string  `json:"instanceClass,omitempty"`
	PerformanceInsightsEnabled *bool    `json:"performanceInsightsEnabled,omitempty"`
}

func (*RDSInstance) isResource() {}

func shapeRDSInstance(b Base, f fields) Resource {
	b.nameFrom(f, "dbInstanceName")
	return &RDSInstance{
		Base:                       b,
		DBInstanceID:               f.str("dbInstanceId"),
		DBInstanceARN:              f.str("dbInstanceArn"),
		Engine:                     f.str("engine"),
		EngineVersion:              f.str("engineVersion"),
		Status:                     f.str("status", "dbInstanceStatus"),
		StorageType:                f.str("storageType"),
		AllocatedStorage:           f.num("allocatedStorage"),
		MultiAZ:                    f.boolean("multiAZ", "multiAz"),
		InstanceClass:              f.str("instanceClass", "dbInstanceClass"),
		PerformanceInsightsEnabled: f.boolean("performanceInsightsEnabled"),
	}
}

// RDSSnapshot is a manual snapshot of a database instance.
type RDSSnapshot struct {
	Base
	SnapshotID       *string  `json:"snapshotId,omitempty"`
	SnapshotARN      *string  `json:"snapshotArn,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Engine           *string  `json:"engine,omitempty"`
	InstanceID       *string  `json:"instanceId,omitempty"`
	SnapshotType     *string  `json:"snapshotType,omitempty"`
	AllocatedStorage *float64 `json:"allocatedStorage,omitempty"`
	Encrypted        *bool    `json:"encrypted,omitempty"`
}

func (*RDSSnapshot) isResource() {}

func shapeRDSSnapshot(b Base, f fields) Resource {
	b.nameFrom(f, "snapshotName")
	return &RDSSnapshot{
		Base:             b,
		SnapshotID:       f.str("snapshotId"),
		SnapshotARN:      f.str("snapshotArn"),
		Status:           f.str("status"),
		Engine:           f.str("engine"),
		InstanceID:       f.str("instanceId", "dbInstanceId"),
		SnapshotType:     f.str("snapshotType"),
		AllocatedStorage: f.num("allocatedStorage"),
		Encrypted:        f.boolean("encrypted"),
	}
}

// RDSClusterSnapshot is a manual snapshot of an Aurora cluster.
type RDSClusterSnapshot struct {
	Base
	SnapshotID       *string  `json:"snapshotId,omitempty"`
	SnapshotARN      *string  `json:"snapshotArn,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Engine           *string  `json:"engine,omitempty"`
	ClusterID        *string  `json:"clusterId,omitempty"`
	SnapshotType     *string  `json:"snapshotType,omitempty"`
	AllocatedStorage *float64 `json:"allocatedStorage,omitempty"`
	Encrypted        *bool    `json:"encrypted,omitempty"`
}

func (*RDSClusterSnapshot) isResource() {}

func shapeRDSClusterSnapshot(b Base, f fields) Resource {
	b.nameFrom(f, "snapshotName")
	return &RDSClusterSnapshot{
		Base:             b,
		SnapshotID:       f.str("snapshotId"),
		SnapshotARN:      f.str("snapshotArn"),
		Status:           f.str("status"),
		Engine:           f.str("engine"),
		ClusterID:        f.str("clusterId", "dbClusterId"),
		SnapshotType:     f.str("snapshotType"),
		AllocatedStorage: f.num("allocatedStorage"),
		Encrypted:        f.boolean("encrypted", "storageEncrypted"),
	}
}
