package resource

import "time"

func init() {
	register(KindVPC, shapeVPC)
	register(KindSecurityGroup, shapeSecurityGroup)
	register(KindSubnet, shapeSubnet)
	register(KindNATGateway, shapeNATGateway)
	register(KindInternetGateway, shapeInternetGateway)
	register(KindElasticIP, shapeElasticIP)
	register(KindRouteTable, shapeRouteTable)
	register(KindNetworkACL, shapeNetworkACL)
	register(KindVPCEndpoint, shapeVPCEndpoint)
	register(KindVPCPeeringConnection, shapeVPCPeeringConnection)
	register(KindVPNConnection, shapeVPNConnection)
	register(KindTransitGateway, shapeTransitGateway)
	register(KindTransitGatewayAttachment, shapeTransitGatewayAttachment)
	register(KindLoadBalancer, shapeLoadBalancer)
	register(KindClassicLoadBalancer, shapeClassicLoadBalancer)
	register(KindDirectConnectConnection, shapeDirectConnectConnection)
	register(KindDirectConnectVirtualInterface, shapeDirectConnectVirtualInterface)
}

type VPC struct {
	Base
	VpcID              *string `json:"vpcId,omitempty"`
	CidrBlock          *string `json:"cidrBlock,omitempty"`
	State              *string `json:"state,omitempty"`
	IsDefault          *bool   `json:"isDefault,omitempty"`
	EnableDNSHostnames *bool   `json:"enableDnsHostnames,omitempty"`
	EnableDNSSupport   *bool   `json:"enableDnsSupport,omitempty"`
	FlowLogsEnabled    *bool   `json:"flowLogsEnabled,omitempty"`
	InstanceTenancy    *string `json:"instanceTenancy,omitempty"`
}

func (*VPC) isResource() {}

func shapeVPC(b Base, f fields) Resource {
	b.nameFrom(f, "vpcName")
	return &VPC{
		Base:               b,
		VpcID:              f.str("vpcId"),
		CidrBlock:          f.str("cidrBlock"),
		State:              f.str("state"),
		IsDefault:          f.boolean("isDefault"),
		EnableDNSHostnames: f.boolean("enableDnsHostnames"),
		EnableDNSSupport:   f.boolean("enableDnsSupport"),
		FlowLogsEnabled:    f.boolean("flowLogsEnabled"),
		InstanceTenancy:    f.str("instanceTenancy"),
	}
}

// SecurityGroup carries rule counts and exposure flags rather than the rules.
type SecurityGroup struct {
	Base
	GroupID                *string `json:"groupId,omitempty"`
	GroupName              *string `json:"groupName,omitempty"`
	Description            *string `json:"description,omitempty"`
	VpcID                  *string `json:"vpcId,omitempty"`
	IngressRuleCount       *int64  `json:"ingressRuleCount,omitempty"`
	EgressRuleCount        *int64  `json:"egressRuleCount,omitempty"`
	HasExposedIngressPorts *bool   `json:"hasExposedIngressPorts,omitempty"`
	AllIngressPortsExposed *bool   `json:"allIngressPortsExposed,omitempty"`
	HasExposedEgressPorts  *bool   `json:"hasExposedEgressPorts,omitempty"`

	ExposedIngressPorts []string `json:"exposedIngressPorts,omitempty"`
	ExposedEgressPorts  []string `json:"exposedEgressPorts,omitempty"`
}

func (*SecurityGroup) isResource() {}

func shapeSecurityGroup(b Base, f fields) Resource {
	b.nameFrom(f, "groupNameTag", "groupName")
	return &SecurityGroup{
		Base:                   b,
		GroupID:                f.str("groupId"),
		GroupName:              f.str("groupName"),
		Description:            f.str("description"),
		VpcID:                  f.str("vpcId"),
		IngressRuleCount:       f.count("ingressRuleCount"),
		EgressRuleCount:        f.count("egressRuleCount"),
		HasExposedIngressPorts: f.boolean("hasExposedIngressPorts"),
		AllIngressPortsExposed: f.boolean("allIngressPortsExposed"),
		HasExposedEgressPorts:  f.boolean("hasExposedEgressPorts"),
		ExposedIngressPorts:    f.list("exposedIngressPorts", "exposedPorts"),
		ExposedEgressPorts:     f.list("exposedEgressPorts"),
	}
}

type Subnet struct {
	Base
	SubnetID                    *string `json:"subnetId,omitempty"`
	VpcID                       *string `json:"vpcId,omitempty"`
	CidrBlock                   *string `json:"cidrBlock,omitempty"`
	AvailabilityZoneID          *string `json:"availabilityZoneId,omitempty"`
	State                       *string `json:"state,omitempty"`
	AvailableIPAddressCount     *int64  `json:"availableIpAddressCount,omitempty"`
	DefaultForAZ                *bool   `json:"defaultForAz,omitempty"`
	MapPublicIPOnLaunch         *bool   `json:"mapPublicIpOnLaunch,omitempty"`
	AssignIPv6AddressOnCreation *bool   `json:"assignIpv6AddressOnCreation,omitempty"`
}

func (*Subnet) isResource() {}

func shapeSubnet(b Base, f fields) Resource {
	b.nameFrom(f, "subnetName")
	return &Subnet{
		Base:                        b,
		SubnetID:                    f.str("subnetId"),
		VpcID:                       f.str("vpcId"),
		CidrBlock:                   f.str("cidrBlock"),
		AvailabilityZoneID:          f.str("availabilityZoneId"),
		State:                       f.str("state"),
		AvailableIPAddressCount:     f.count("availableIpAddressCount"),
		DefaultForAZ:                f.boolean("defaultForAz"),
		MapPublicIPOnLaunch:         f.boolean("mapPublicIpOnLaunch"),
		AssignIPv6AddressOnCreation: f.boolean("assignIpv6AddressOnCreation"),
	}
}

type NATGateway struct {
	Base
	NATGatewayID     *string  `json:"natGatewayId,omitempty"`
	State            *string  `json:"state,omitempty"`
	VpcID            *string  `json:"vpcId,omitempty"`
	SubnetID         *string  `json:"subnetId,omitempty"`
	ConnectivityType *string  `json:"connectivityType,omitempty"`
	PublicIPs        []string `json:"publicIps,omitempty"`
}

func (*NATGateway) isResource() {}

func shapeNATGateway(b Base, f fields) Resource {
	b.nameFrom(f, "natGatewayName")
	return &NATGateway{
		Base:             b,
		NATGatewayID:     f.str("natGatewayId"),
		State:            f.str("state"),
		VpcID:            f.str("vpcId"),
		SubnetID:         f.str("subnetId"),
		ConnectivityType: f.str("connectivityType"),
		PublicIPs:        f.list("publicIps"),
	}
}

type InternetGateway struct {
	Base
	InternetGatewayID *string  `json:"internetGatewayId,omitempty"`
	AttachmentCount   *int64   `json:"attachmentCount,omitempty"`
	AttachedVpcIDs    []string `json:"attachedVpcs,omitempty"`
}

func (*InternetGateway) isResource() {}

func shapeInternetGateway(b Base, f fields) Resource {
	b.nameFrom(f, "internetGatewayName")
	return &InternetGateway{
		Base:              b,
		InternetGatewayID: f.str("internetGatewayId"),
		AttachmentCount:   f.count("attachmentCount"),
		AttachedVpcIDs:    f.list("attachedVpcs"),
	}
}

type ElasticIP struct {
	Base
	AllocationID            *string `json:"allocationId,omitempty"`
	PublicIP                *string `json:"publicIp,omitempty"`
	PrivateIPAddress        *string `json:"privateIpAddress,omitempty"`
	InstanceID              *string `json:"instanceId,omitempty"`
	NetworkInterfaceID      *string `json:"networkInterfaceId,omitempty"`
	NetworkInterfaceOwnerID *string `json:"networkInterfaceOwnerId,omitempty"`
	AssociationID           *string `json:"associationId,omitempty"`
	Domain                  *string `json:"domain,omitempty"`
	NetworkBorderGroup      *string `json:"networkBorderGroup,omitempty"`
	CustomerOwnedIP         *string `json:"customerOwnedIp,omitempty"`
	CustomerOwnedIPv4Pool   *string `json:"customerOwnedIpv4Pool,omitempty"`
	CarrierIP               *string `json:"carrierIp,omitempty"`
}

func (*ElasticIP) isResource() {}

// Associated reports whether the address is attached to anything.
func (e *ElasticIP) Associated() bool {
	return e.AssociationID != nil && *e.AssociationID != "" && *e.AssociationID != "N/A"
}

func shapeElasticIP(b Base, f fields) Resource {
	b.nameFrom(f, "eipName")
	return &ElasticIP{
		Base:                    b,
		AllocationID:            f.str("allocationId"),
		PublicIP:                f.str("publicIp"),
		PrivateIPAddress:        f.str("privateIpAddress"),
		InstanceID:              f.str("instanceId"),
		NetworkInterfaceID:      f.str("networkInterfaceId"),
		NetworkInterfaceOwnerID: f.str("networkInterfaceOwnerId"),
		AssociationID:           f.str("associationId"),
		Domain:                  f.str("domain"),
		NetworkBorderGroup:      f.str("networkBorderGroup"),
		CustomerOwnedIP:         f.str("customerOwnedIp"),
		CustomerOwnedIPv4Pool:   f.str("customerOwnedIpv4Pool"),
		CarrierIP:               f.str("carrierIp"),
	}
}

type RouteTable struct {
	Base
	RouteTableID       *string `json:"routeTableId,omitempty"`
	VpcID              *string `json:"vpcId,omitempty"`
	RouteCount         *int64  `json:"routeCount,omitempty"`
	HasInternetRoute   *bool   `json:"hasInternetRoute,omitempty"`
	HasNATRoute        *bool   `json:"hasNatRoute,omitempty"`
	HasVpcPeeringRoute *bool   `json:"hasVpcPeeringRoute,omitempty"`
	AssociationCount   *int64  `json:"associationCount,omitempty"`
	IsMain             *bool   `json:"isMain,omitempty"`

	AssociatedSubnets []string `json:"associatedSubnets,omitempty"`
}

func (*RouteTable) isResource() {}

func shapeRouteTable(b Base, f fields) Resource {
	b.nameFrom(f, "routeTableName")
	return &RouteTable{
		Base:               b,
		RouteTableID:       f.str("routeTableId"),
		VpcID:              f.str("vpcId"),
		RouteCount:         f.count("routeCount"),
		HasInternetRoute:   f.boolean("hasInternetRoute"),
		HasNATRoute:        f.boolean("hasNatRoute"),
		HasVpcPeeringRoute: f.boolean("hasVpcPeeringRoute"),
		AssociationCount:   f.count("associationCount"),
		IsMain:             f.boolean("isMain"),
		AssociatedSubnets:  f.list("associatedSubnets"),
	}
}

type NetworkACL struct {
	Base
	NetworkACLID        *string `json:"networkAclId,omitempty"`
	VpcID               *string `json:"vpcId,omitempty"`
	IsDefault           *bool   `json:"isDefault,omitempty"`
	IngressRuleCount    *int64  `json:"ingressRuleCount,omitempty"`
	EgressRuleCount     *int64  `json:"egressRuleCount,omitempty"`
	CustomDenyRuleCount *int64  `json:"customDenyRuleCount,omitempty"`
	AssociationCount    *int64  `json:"associationCount,omitempty"`

	AssociatedSubnets []string `json:"associatedSubnets,omitempty"`
}

func (*NetworkACL) isResource() {}

func shapeNetworkACL(b Base, f fields) Resource {
	b.nameFrom(f, "networkAclName")
	return &NetworkACL{
		Base:                b,
		NetworkACLID:        f.str("networkAclId"),
		VpcID:               f.str("vpcId"),
		IsDefault:           f.boolean("isDefault"),
		IngressRuleCount:    f.count("ingressRuleCount"),
		EgressRuleCount:     f.count("egressRuleCount"),
		CustomDenyRuleCount: f.count("customDenyRuleCount"),
		AssociationCount:    f.count("associationCount"),
		AssociatedSubnets:   f.list("associatedSubnets"),
	}
}

// VPCEndpoint keeps the policy document as decoded JSON.
type VPCEndpoint struct {
	Base
	VPCEndpointID     *string `json:"vpcEndpointId,omitempty"`
	VpcID             *string `json:"vpcId,omitempty"`
	ServiceName       *string `json:"serviceName,omitempty"`
	VPCEndpointType   *string `json:"vpcEndpointType,omitempty"`
	State             *string `json:"state,omitempty"`
	PolicyDocument    any     `json:"policyDocument,omitempty"`
	PrivateDNSEnabled *bool   `json:"privateDnsEnabled,omitempty"`

	SubnetIDs        []string `json:"subnetIds,omitempty"`
	RouteTableIDs    []string `json:"routeTableIds,omitempty"`
	SecurityGroupIDs []string `json:"securityGroupIds,omitempty"`
}

func (*VPCEndpoint) isResource() {}

func shapeVPCEndpoint(b Base, f fields) Resource {
	b.nameFrom(f, "vpcEndpointName")
	return &VPCEndpoint{
		Base:              b,
		VPCEndpointID:     f.str("vpcEndpointId"),
		VpcID:             f.str("vpcId"),
		ServiceName:       f.str("serviceName"),
		VPCEndpointType:   f.str("vpcEndpointType"),
		State:             f.str("state"),
		PolicyDocument:    f.object("policyDocument"),
		PrivateDNSEnabled: f.boolean("privateDnsEnabled"),
		SubnetIDs:         f.list("subnetIds"),
		RouteTableIDs:     f.list("routeTableIds"),
		SecurityGroupIDs:  f.list("securityGroupIds"),
	}
}

type VPCPeeringConnection struct {
	Base
	PeeringConnectionID *string `json:"vpcPeeringConnectionId,omitempty"`
	Status              *string `json:"status,omitempty"`
	StatusMessage       *string `json:"statusMessage,omitempty"`
	AccepterVpcID       *string `json:"accepterVpcId,omitempty"`
	AccepterRegion      *string `json:"accepterRegion,omitempty"`
	AccepterOwnerID     *string `json:"accepterOwnerId,omitempty"`
	RequesterVpcID      *string `json:"requesterVpcId,omitempty"`
	RequesterRegion     *string `json:"requesterRegion,omitempty"`
	RequesterOwnerID    *string `json:"requesterOwnerId,omitempty"`
}

func (*VPCPeeringConnection) isResource() {}

func shapeVPCPeeringConnection(b Base, f fields) Resource {
	b.nameFrom(f, "peeringConnectionName")
	return &VPCPeeringConnection{
		Base:                b,
		PeeringConnectionID: f.str("vpcPeeringConnectionId"),
		Status:              f.str("status"),
		StatusMessage:       f.str("statusMessage"),
		AccepterVpcID:       f.str("accepterVpcId"),
		AccepterRegion:      f.str("accepterRegion"),
		AccepterOwnerID:     f.str("accepterOwnerId"),
		RequesterVpcID:      f.str("requesterVpcId"),
		RequesterRegion:     f.str("requesterRegion"),
		RequesterOwnerID:    f.str("requesterOwnerId"),
	}
}

// VPNConnection is a site-to-site VPN. ConnectionType comes from the
// record's "type" field, which is never read as the discriminant when
// resourceType is present.
type VPNConnection struct {
	Base
	VPNConnectionID   *string `json:"vpnConnectionId,omitempty"`
	State             *string `json:"state,omitempty"`
	ConnectionType    *string `json:"type,omitempty"`
	CustomerGatewayID *string `json:"customerGatewayId,omitempty"`
	VPNGatewayID      *string `json:"vpnGatewayId,omitempty"`
	TransitGatewayID  *string `json:"transitGatewayId,omitempty"`
	Category          *string `json:"category,omitempty"`
	TunnelCount       *int64  `json:"tunnelCount,omitempty"`
	TunnelsUp         *int64  `json:"tunnelsUp,omitempty"`
}

func (*VPNConnection) isResource() {}

func shapeVPNConnection(b Base, f fields) Resource {
	b.nameFrom(f, "vpnConnectionName")
	return &VPNConnection{
		Base:              b,
		VPNConnectionID:   f.str("vpnConnectionId"),
		State:             f.str("state"),
		ConnectionType:    f.str("type"),
		CustomerGatewayID: f.str("customerGatewayId"),
		VPNGatewayID:      f.str("vpnGatewayId"),
		TransitGatewayID:  f.str("transitGatewayId"),
		Category:          f.str("category"),
		TunnelCount:       f.count("tunnelCount"),
		TunnelsUp:         f.count("tunnelsUp"),
	}
}

type TransitGateway struct {
	Base
	TransitGatewayID             *string `json:"transitGatewayId,omitempty"`
	State                        *string `json:"state,omitempty"`
	OwnerID                      *string `json:"ownerId,omitempty"`
	Description                  *string `json:"description,omitempty"`
	AmazonSideASN                *int64  `json:"amazonSideAsn,omitempty"`
	DNSSupport                   *string `json:"dnsSupport,omitempty"`
	VPNECMPSupport               *string `json:"vpnEcmpSupport,omitempty"`
	DefaultRouteTableAssociation *string `json:"defaultRouteTableAssociation,omitempty"`
	DefaultRouteTablePropagation *string `json:"defaultRouteTablePropagation,omitempty"`
	MulticastSupport             *string `json:"multicastSupport,omitempty"`
}

func (*TransitGateway) isResource() {}

func shapeTransitGateway(b Base, f fields) Resource {
	b.nameFrom(f, "transitGatewayName")
	return &TransitGateway{
		Base:                         b,
		TransitGatewayID:             f.str("transitGatewayId"),
		State:                        f.str("state"),
		OwnerID:                      f.str("ownerId"),
		Description:                  f.str("description"),
		AmazonSideASN:                f.count("amazonSideAsn"),
		DNSSupport:                   f.str("dnsSupport"),
		VPNECMPSupport:               f.str("vpnEcmpSupport"),
		DefaultRouteTableAssociation: f.str("defaultRouteTableAssociation"),
		DefaultRouteTablePropagation: f.str("defaultRouteTablePropagation"),
		MulticastSupport:             f.str("multicastSupport"),
	}
}

type TransitGatewayAttachment struct {
	Base
	AttachmentID          *string `json:"transitGatewayAttachmentId,omitempty"`
	TransitGatewayID      *string `json:"transitGatewayId,omitempty"`
	TransitGatewayOwnerID *string `json:"transitGatewayOwnerId,omitempty"`
	AttachedResourceType  *string `json:"attachedResourceType,omitempty"`
	AttachedResourceID    *string `json:"attachedResourceId,omitempty"`
	ResourceOwnerID       *string `json:"resourceOwnerId,omitempty"`
	State                 *string `json:"state,omitempty"`
}

func (*TransitGatewayAttachment) isResource() {}

func shapeTransitGatewayAttachment(b Base, f fields) Resource {
	b.nameFrom(f, "attachmentName")
	return &TransitGatewayAttachment{
		Base:                  b,
		AttachmentID:          f.str("transitGatewayAttachmentId"),
		TransitGatewayID:      f.str("transitGatewayId"),
		TransitGatewayOwnerID: f.str("transitGatewayOwnerId"),
		AttachedResourceType:  f.str("attachedResourceType"),
		AttachedResourceID:    f.str("attachedResourceId"),
		ResourceOwnerID:       f.str("resourceOwnerId"),
		State:                 f.str("state"),
	}
}

// LoadBalancer is an application, network or gateway load balancer.
type LoadBalancer struct {
	Base
	LoadBalancerARN       *string `json:"loadBalancerArn,omitempty"`
	LoadBalancerName      *string `json:"loadBalancerName,omitempty"`
	DNSName               *string `json:"dnsName,omitempty"`
	CanonicalHostedZoneID *string `json:"canonicalHostedZoneId,omitempty"`
	Scheme                *string `json:"scheme,omitempty"`
	State                 *string `json:"state,omitempty"`
	LoadBalancerType      *string `json:"type,omitempty"`
	VpcID                 *string `json:"vpcId,omitempty"`
	IPAddressType         *string `json:"ipAddressType,omitempty"`

	SecurityGroups []string `json:"securityGroups,omitempty"`
	TargetGroups   []string `json:"targetGroups,omitempty"`
}

func (*LoadBalancer) isResource() {}

func shapeLoadBalancer(b Base, f fields) Resource {
	b.nameFrom(f, "loadBalancerNameTag", "loadBalancerName")
	return &LoadBalancer{
		Base:                  b,
		LoadBalancerARN:       f.str("loadBalancerArn"),
		LoadBalancerName:      f.str("loadBalancerName"),
		DNSName:               f.str("dnsName"),
		CanonicalHostedZoneID: f.str("canonicalHostedZoneId"),
		Scheme:                f.str("scheme"),
		State:                 f.str("state"),
		LoadBalancerType:      f.str("type", "loadBalancerType"),
		VpcID:                 f.str("vpcId"),
		IPAddressType:         f.str("ipAddressType"),
		SecurityGroups:        f.list("securityGroups"),
		TargetGroups:          f.list("targetGroups"),
	}
}

type ClassicLoadBalancer struct {
	Base
	LoadBalancerName          *string `json:"loadBalancerName,omitempty"`
	DNSName                   *string `json:"dnsName,omitempty"`
	CanonicalHostedZoneName   *string `json:"canonicalHostedZoneName,omitempty"`
	CanonicalHostedZoneNameID *string `json:"canonicalHostedZoneNameId,omitempty"`
	Scheme                    *string `json:"scheme,omitempty"`
	VpcID                     *string `json:"vpcId,omitempty"`
	InstanceCount             *int64  `json:"instanceCount,omitempty"`

	Subnets        []string `json:"subnets,omitempty"`
	SecurityGroups []string `json:"securityGroups,omitempty"`
	Instances      []string `json:"instances,omitempty"`
}

func (*ClassicLoadBalancer) isResource() {}

func shapeClassicLoadBalancer(b Base, f fields) Resource {
	b.nameFrom(f, "loadBalancerNameTag", "loadBalancerName")
	return &ClassicLoadBalancer{
		Base:                      b,
		LoadBalancerName:          f.str("loadBalancerName"),
		DNSName:                   f.str("dnsName"),
		CanonicalHostedZoneName:   f.str("canonicalHostedZoneName"),
		CanonicalHostedZoneNameID: f.str("canonicalHostedZoneNameId"),
		Scheme:                    f.str("scheme"),
		VpcID:                     f.str("vpcId"),
		InstanceCount:             f.count("instanceCount"),
		Subnets:                   f.list("subnets"),
		SecurityGroups:            f.list("securityGroups"),
		Instances:                 f.list("instances"),
	}
}

type DirectConnectConnection struct {
	Base
	ConnectionID         *string    `json:"connectionId,omitempty"`
	ConnectionState      *string    `json:"connectionState,omitempty"`
	Location             *string    `json:"location,omitempty"`
	Bandwidth            *string    `json:"bandwidth,omitempty"`
	VLAN                 *int64     `json:"vlan,omitempty"`
	PartnerName          *string    `json:"partnerName,omitempty"`
	LOAIssueTime         *time.Time `json:"loaIssueTime,omitempty"`
	LagID                *string    `json:"lagId,omitempty"`
	AWSDevice            *string    `json:"awsDevice,omitempty"`
	AWSDeviceV2          *string    `json:"awsDeviceV2,omitempty"`
	HasLogicalRedundancy *string    `json:"hasLogicalRedundancy,omitempty"`
	MACSecCapable        *bool      `json:"macSecCapable,omitempty"`
	PortEncryptionStatus *string    `json:"portEncryptionStatus,omitempty"`
	EncryptionMode       *string    `json:"encryptionMode,omitempty"`
}

func (*DirectConnectConnection) isResource() {}

func shapeDirectConnectConnection(b Base, f fields) Resource {
	b.nameFrom(f, "connectionName")
	return &DirectConnectConnection{
		Base:                 b,
		ConnectionID:         f.str("connectionId"),
		ConnectionState:      f.str("connectionState"),
		Location:             f.str("location"),
		Bandwidth:            f.str("bandwidth"),
		VLAN:                 f.count("vlan"),
		PartnerName:          f.str("partnerName"),
		LOAIssueTime:         f.timePtr("loaIssueTime"),
		LagID:                f.str("lagId"),
		AWSDevice:            f.str("awsDevice"),
		AWSDeviceV2:          f.str("awsDeviceV2"),
		HasLogicalRedundancy: f.str("hasLogicalRedundancy"),
		MACSecCapable:        f.boolean("macSecCapable"),
		PortEncryptionStatus: f.str("portEncryptionStatus"),
		EncryptionMode:       f.str("encryptionMode"),
	}
}

// DirectConnectVirtualInterface omits the BGP auth key the collector stores.
type DirectConnectVirtualInterface struct {
	Base
	VirtualInterfaceID     *string `json:"virtualInterfaceId,omitempty"`
	ConnectionID           *string `json:"connectionId,omitempty"`
	VirtualInterfaceType   *string `json:"virtualInterfaceType,omitempty"`
	VirtualInterfaceState  *string `json:"virtualInterfaceState,omitempty"`
	CustomerAddress        *string `json:"customerAddress,omitempty"`
	AmazonAddress          *string `json:"amazonAddress,omitempty"`
	VLAN                   *int64  `json:"vlan,omitempty"`
	ASN                    *int64  `json:"asn,omitempty"`
	AmazonSideASN          *int64  `json:"amazonSideAsn,omitempty"`
	CustomerRouterConfig   *string `json:"customerRouterConfig,omitempty"`
	MTU                    *int64  `json:"mtu,omitempty"`
	JumboFrameCapable      *bool   `json:"jumboFrameCapable,omitempty"`
	VirtualGatewayID       *string `json:"virtualGatewayId,omitempty"`
	DirectConnectGatewayID *string `json:"directConnectGatewayId,omitempty"`
}

func (*DirectConnectVirtualInterface) isResource() {}

func shapeDirectConnectVirtualInterface(b Base, f fields) Resource {
	b.nameFrom(f, "virtualInterfaceName")
	return &DirectConnectVirtualInterface{
		Base:                   b,
		VirtualInterfaceID:     f.str("virtualInterfaceId"),
		ConnectionID:           f.str("connectionId"),
		VirtualInterfaceType:   f.str("virtualInterfaceType"),
		VirtualInterfaceState:  f.str("virtualInterfaceState"),
		CustomerAddress:        f.str("customerAddress"),
		AmazonAddress:          f.str("amazonAddress"),
		VLAN:                   f.count("vlan"),
		ASN:                    f.count("asn"),
		AmazonSideASN:          f.count("amazonSideAsn"),
		CustomerRouterConfig:   f.str("customerRouterConfig"),
		MTU:                    f.count("mtu"),
		JumboFrameCapable:      f.boolean("jumboFrameCapable"),
		VirtualGatewayID:       f.str("virtualGatewayId"),
		DirectConnectGatewayID: f.str("directConnectGatewayId"),
	}
}
