// Package resource defines the canonical inventory model and the normalizer
// that shapes raw store records into it.
package resource

import (
	"encoding/json"
	"time"
)

// Kind is the resource discriminant written by the collector.
type Kind string

const (
	KindEC2Instance                   Kind = "EC2Instance"
	KindEBSVolume                     Kind = "EBSVolume"
	KindEBSSnapshot                   Kind = "EBSSnapshot"
	KindAMI                           Kind = "AMI"
	KindAutoScalingGroup              Kind = "AutoScalingGroup"
	KindRDSInstance                   Kind = "RDSInstance"
	KindRDSSnapshot                   Kind = "RDSSnapshot"
	KindRDSClusterSnapshot            Kind = "RDSClusterSnapshot"
	KindS3Bucket                      Kind = "S3Bucket"
	KindEFSFileSystem                 Kind = "EFSFileSystem"
	KindFSxFileSystem                 Kind = "FSxFileSystem"
	KindBackupPlan                    Kind = "BackupPlan"
	KindBackupVault                   Kind = "BackupVault"
	KindVPC                           Kind = "VPC"
	KindSecurityGroup                 Kind = "SecurityGroup"
	KindSubnet                        Kind = "Subnet"
	KindNATGateway                    Kind = "NATGateway"
	KindInternetGateway               Kind = "InternetGateway"
	KindElasticIP                     Kind = "ElasticIP"
	KindRouteTable                    Kind = "RouteTable"
	KindNetworkACL                    Kind = "NetworkACL"
	KindVPCEndpoint                   Kind = "VPCEndpoint"
	KindVPCPeeringConnection          Kind = "VPCPeeringConnection"
	KindVPNConnection                 Kind = "VPNConnection"
	KindTransitGateway                Kind = "TransitGateway"
	KindTransitGatewayAttachment      Kind = "TransitGatewayAttachment"
	KindLoadBalancer                  Kind = "LoadBalancer"
	KindClassicLoadBalancer           Kind = "ClassicLoadBalancer"
	KindDirectConnectConnection       Kind = "DirectConnectConnection"
	KindDirectConnectVirtualInterface Kind = "DirectConnectVirtualInterface"
)

// Kinds returns every kind with a dedicated shape, in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindEC2Instance, KindEBSVolume, KindEBSSnapshot, KindAMI, KindAutoScalingGroup,
		KindRDSInstance, KindRDSSnapshot, KindRDSClusterSnapshot,
		KindS3Bucket, KindEFSFileSystem, KindFSxFileSystem, KindBackupPlan, KindBackupVault,
		KindVPC, KindSecurityGroup, KindSubnet, KindNATGateway, KindInternetGateway,
		KindElasticIP, KindRouteTable, KindNetworkACL, KindVPCEndpoint,
		KindVPCPeeringConnection, KindVPNConnection, KindTransitGateway,
		KindTransitGatewayAttachment, KindLoadBalancer, KindClassicLoadBalancer,
		KindDirectConnectConnection, KindDirectConnectVirtualInterface,
	}
}

// Known reports whether k has a dedicated shape.
func (k Kind) Known() bool {
	_, ok := shapers[k]
	return ok
}

// Resource is one of the per-kind shapes in this package, or Generic.
// The set is closed: only types declared here implement it.
type Resource interface {
	Common() *Base
	Kind() Kind
	isResource()
}

// Base holds the fields every resource kind shares.
type Base struct {
	ID                   string         `json:"id"`
	Type                 Kind           `json:"resourceType"`
	AccountID            string         `json:"accountId"`
	AccountName          string         `json:"accountName,omitempty"`
	Region               string         `json:"region"`
	ResourceTypeRegionID string         `json:"resourceTypeRegionId,omitempty"`
	Name                 string         `json:"name,omitempty"`
	CreatedAt            time.Time      `json:"createdAt,omitzero"`
	UpdatedAt            time.Time      `json:"updatedAt,omitzero"`
	LastUpdated          time.Time      `json:"lastUpdated,omitzero"`
	Tags                 []Tag          `json:"tags,omitempty"`
	Metrics              map[string]any `json:"metrics,omitempty"`
	AvailabilityZones    []string       `json:"availabilityZones,omitempty"`
}

// Common returns the shared fields.
func (b *Base) Common() *Base { return b }

// Kind returns the resource discriminant.
func (b *Base) Kind() Kind { return b.Type }

// Generic preserves a record whose discriminant has no dedicated shape.
// Fields holds every decoded field Base does not own.
type Generic struct {
	Base
	Fields map[string]any `json:"-"`
}

func (*Generic) isResource() {}

// MarshalJSON flattens Fields next to the base fields. Base wins on
// conflicting keys.
func (g *Generic) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(g.Base)
	if err != nil {
		return nil, err
	}
	var baseFields map[string]any
	if err := json.Unmarshal(base, &baseFields); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(g.Fields)+len(baseFields))
	for k, v := range g.Fields {
		out[k] = v
	}
	for k, v := range baseFields {
		out[k] = v
	}
	return json.Marshal(out)
}
