package resource

func init() {
	register(KindEC2Instance, shapeEC2Instance)
	register(KindEBSVolume, shapeEBSVolume)
	register(KindEBSSnapshot, shapeEBSSnapshot)
	register(KindAMI, shapeAMI)
	register(KindAutoScalingGroup, shapeAutoScalingGroup)
}

// EC2Instance is a compute instance with its health, agent and schedule data.
type EC2Instance struct {
	Base
	InstanceID      *string `json:"instanceId,omitempty"`
	InstanceType    *string `json:"instanceType,omitempty"`
	InstanceState   *string `json:"instanceState,omitempty"`
	PlatformDetails *string `json:"platformDetails,omitempty"`
	IsWindows       *bool   `json:"isWindows,omitempty"`
	AMIName         *string `json:"amiName,omitempty"`
	ImageID         *string `json:"imageId,omitempty"`
	IAMRole         *string `json:"iamRole,omitempty"`
	VpcID           *string `json:"vpcId,omitempty"`
	SubnetID        *string `json:"subnetId,omitempty"`

	HealthStatus       *string `json:"healthStatus,omitempty"`
	HealthChecksPassed *int64  `json:"healthChecksPassed,omitempty"`
	HealthChecksTotal  *int64  `json:"healthChecksTotal,omitempty"`
	SystemStatus       *string `json:"systemStatus,omitempty"`
	InstanceStatus     *string `json:"instanceStatus,omitempty"`
	EBSStatus          *string `json:"ebsStatus,omitempty"`

	SSMStatus       *string `json:"ssmStatus,omitempty"`
	SSMPingStatus   *string `json:"ssmPingStatus,omitempty"`
	SSMVersion      *string `json:"ssmVersion,omitempty"`
	SSMLastPingTime *string `json:"ssmLastPingTime,omitempty"`

	CWAgentMemoryDetected *bool    `json:"cwAgentMemoryDetected,omitempty"`
	CWAgentDiskDetected   *bool    `json:"cwAgentDiskDetected,omitempty"`
	RAMUtilization        *float64 `json:"ramUtilization,omitempty"`
	DiskUtilization       *float64 `json:"diskUtilization,omitempty"`

	PrivateIPs []string `json:"instancePrivateIps,omitempty"`
	PublicIPs  []string `json:"instancePublicIps,omitempty"`

	SWOBackup    *string `json:"swoBackup,omitempty"`
	SWOPatch     *string `json:"swoPatch,omitempty"`
	SWORiskClass *string `json:"swoRiskClass,omitempty"`
	SWOMonitor   *string `json:"swoMonitor,omitempty"`
	PatchGroup   *string `json:"patchGroup,omitempty"`
	StartStop    *string `json:"startStop,omitempty"`
	AutoStart    *string `json:"autoStart,omitempty"`
	AutoShutdown *string `json:"autoShutdown,omitempty"`
	Saturday     *string `json:"saturday,omitempty"`
	Sunday       *string `json:"sunday,omitempty"`
}

func (*EC2Instance) isResource() {}

func shapeEC2Instance(b Base, f fields) Resource {
	b.nameFrom(f, "instanceName")
	r := &EC2Instance{
		Base:            b,
		InstanceID:      f.str("instanceId"),
		InstanceType:    f.str("instanceType"),
		InstanceState:   f.str("instanceState", "state"),
		PlatformDetails: f.str("platformDetails", "platform"),
		IsWindows:       f.boolean("isWindows"),
		AMIName:         f.str("amiName"),
		ImageID:         f.str("imageId"),
		IAMRole:         f.str("iamRole"),
		VpcID:           f.str("vpcId"),
		SubnetID:        f.str("subnetId"),

		HealthStatus:       f.str("healthStatus"),
		HealthChecksPassed: f.count("healthChecksPassed"),
		HealthChecksTotal:  f.count("healthChecksTotal"),
		SystemStatus:       f.str("systemStatus"),
		InstanceStatus:     f.str("instanceStatus"),
		EBSStatus:          f.str("ebsStatus"),

		SSMStatus:       f.str("ssmStatus"),
		SSMPingStatus:   f.str("ssmPingStatus"),
		SSMVersion:      f.str("ssmVersion"),
		SSMLastPingTime: f.str("ssmLastPingTime"),

		CWAgentMemoryDetected: f.boolean("cwAgentMemoryDetected"),
		CWAgentDiskDetected:   f.boolean("cwAgentDiskDetected"),
		RAMUtilization:        f.num("ramUtilization"),
		DiskUtilization:       f.num("diskUtilization"),

		PrivateIPs: f.list("instancePrivateIps", "privateIps", "privateIpAddress"),
		PublicIPs:  f.list("instancePublicIps", "publicIps", "publicIpAddress"),

		SWOBackup:    f.str("swoBackup"),
		SWOPatch:     f.str("swoPatch"),
		SWORiskClass: f.str("swoRiskClass"),
		SWOMonitor:   f.str("swoMonitor"),
		PatchGroup:   f.str("patchGroup"),
		StartStop:    f.str("startStop"),
		AutoStart:    f.str("autoStart"),
		AutoShutdown: f.str("autoShutdown"),
		Saturday:     f.str("saturday"),
		Sunday:       f.str("sunday"),
	}
	return r
}

// EBSVolume is a block storage volume. Two collector generations wrote the
// size under different names: Size carries the legacy "size" field and
// SizeGiB the "sizeGiB" field. Neither is derived from the other.
type EBSVolume struct {
	Base
	VolumeID            *string  `json:"volumeId,omitempty"`
	VolumeState         *string  `json:"volumeState,omitempty"`
	VolumeType          *string  `json:"volumeType,omitempty"`
	Size                *float64 `json:"size,omitempty"`
	SizeGiB             *float64 `json:"sizeGiB,omitempty"`
	IOPS                *float64 `json:"iops,omitempty"`
	Throughput          *float64 `json:"throughput,omitempty"`
	Encrypted           *bool    `json:"encrypted,omitempty"`
	MultiAttachEnabled  *bool    `json:"multiAttachEnabled,omitempty"`
	AttachedInstanceIDs []string `json:"attachedInstanceIds,omitempty"`
}

func (*EBSVolume) isResource() {}

func shapeEBSVolume(b Base, f fields) Resource {
	b.nameFrom(f, "volumeName")
	return &EBSVolume{
		Base:                b,
		VolumeID:            f.str("volumeId"),
		VolumeState:         f.str("volumeState", "state"),
		VolumeType:          f.str("volumeType"),
		Size:                f.num("size"),
		SizeGiB:             f.num("sizeGiB"),
		IOPS:                f.num("iops"),
		Throughput:          f.num("throughput"),
		Encrypted:           f.boolean("encrypted"),
		MultiAttachEnabled:  f.boolean("multiAttachEnabled"),
		AttachedInstanceIDs: f.list("attachedInstanceIds", "attachedInstanceId", "instanceId"),
	}
}

// EBSSnapshot is a point-in-time copy of a volume.
type EBSSnapshot struct {
	Base
	SnapshotID    *string  `json:"snapshotId,omitempty"`
	VolumeID      *string  `json:"volumeId,omitempty"`
	SnapshotState *string  `json:"snapshotState,omitempty"`
	VolumeSize    *float64 `json:"volumeSize,omitempty"`
	Encrypted     *bool    `json:"encrypted,omitempty"`
}

func (*EBSSnapshot) isResource() {}

func shapeEBSSnapshot(b Base, f fields) Resource {
	b.nameFrom(f, "snapshotName")
	return &EBSSnapshot{
		Base:          b,
		SnapshotID:    f.str("snapshotId"),
		VolumeID:      f.str("volumeId"),
		SnapshotState: f.str("snapshotState", "state"),
		VolumeSize:    f.num("volumeSize", "size"),
		Encrypted:     f.boolean("encrypted"),
	}
}

// AMI is a machine image owned by the account.
type AMI struct {
	Base
	ImageID     *string `json:"imageId,omitempty"`
	ImageState  *string `json:"imageState,omitempty"`
	Description *string `json:"description,omitempty"`
	Platform    *string `json:"platform,omitempty"`
	Public      *bool   `json:"public,omitempty"`
}

func (*AMI) isResource() {}

func shapeAMI(b Base, f fields) Resource {
	b.nameFrom(f, "imageName")
	return &AMI{
		Base:        b,
		ImageID:     f.str("imageId"),
		ImageState:  f.str("imageState", "state"),
		Description: f.str("description"),
		Platform:    f.str("platform", "platformDetails"),
		Public:      f.boolean("public", "isPublic"),
	}
}

// AutoScalingGroup is an EC2 auto scaling group.
type AutoScalingGroup struct {
	Base
	GroupName               *string  `json:"autoScalingGroupName,omitempty"`
	GroupARN                *string  `json:"autoScalingGroupARN,omitempty"`
	LaunchConfigurationName *string  `json:"launchConfigurationName,omitempty"`
	LaunchTemplateName      *string  `json:"launchTemplateName,omitempty"`
	MinSize                 *int64   `json:"minSize,omitempty"`
	MaxSize                 *int64   `json:"maxSize,omitempty"`
	DesiredCapacity         *int64   `json:"desiredCapacity,omitempty"`
	CurrentSize             *int64   `json:"currentSize,omitempty"`
	HealthyInstances        *int64   `json:"healthyInstances,omitempty"`
	HealthCheckType         *string  `json:"healthCheckType,omitempty"`
	HealthCheckGracePeriod  *int64   `json:"healthCheckGracePeriod,omitempty"`
	SubnetIDs               []string `json:"vpcZoneIdentifier,omitempty"`
	ServiceLinkedRoleARN    *string  `json:"serviceLinkedRoleARN,omitempty"`
	InstanceIDs             []string `json:"instanceIds,omitempty"`
	LoadBalancerNames       []string `json:"loadBalancerNames,omitempty"`
	TargetGroupARNs         []string `json:"targetGroupARNs,omitempty"`
}

func (*AutoScalingGroup) isResource() {}

func shapeAutoScalingGroup(b Base, f fields) Resource {
	b.nameFrom(f, "autoScalingGroupNameTag", "autoScalingGroupName")
	return &AutoScalingGroup{
		Base:                    b,
		GroupName:               f.str("autoScalingGroupName"),
		GroupARN:                f.str("autoScalingGroupARN", "autoScalingGroupArn"),
		LaunchConfigurationName: f.str("launchConfigurationName"),
		LaunchTemplateName:      f.str("launchTemplateName"),
		MinSize:                 f.count("minSize"),
		MaxSize:                 f.count("maxSize"),
		DesiredCapacity:         f.count("desiredCapacity"),
		CurrentSize:             f.count("currentSize", "instanceCount"),
		HealthyInstances:        f.count("healthyInstances"),
		HealthCheckType:         f.str("healthCheckType"),
		HealthCheckGracePeriod:  f.count("healthCheckGracePeriod"),
		SubnetIDs:               f.list("vpcZoneIdentifier", "subnetIds"),
		ServiceLinkedRoleARN:    f.str("serviceLinkedRoleARN"),
		InstanceIDs:             f.list("instanceIds"),
		LoadBalancerNames:       f.list("loadBalancerNames"),
		TargetGroupARNs:         f.list("targetGroupARNs"),
	}
}
