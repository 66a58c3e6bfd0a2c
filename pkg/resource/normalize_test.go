package resource

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yairfalse/onevision/pkg/wire"
)

func TestNormalize_MinimalRecordEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			r := Normalize(wire.Record{
				"id":           "x-1",
				"resourceType": string(kind),
				"accountId":    "123456789012",
				"region":       "us-east-1",
			})

			require.Equal(t, kind, r.Kind())
			_, generic := r.(*Generic)
			require.False(t, generic, "kind %s has no dedicated shape", kind)

			b := r.Common()
			assert.Equal(t, "x-1", b.ID)
			assert.Equal(t, string(kind)+":us-east-1", b.ResourceTypeRegionID)
			assert.Empty(t, b.Tags)
			assert.Empty(t, b.Name)

			v := reflect.ValueOf(r).Elem()
			for i := 0; i < v.NumField(); i++ {
				field := v.Type().Field(i)
				if field.Anonymous {
					continue
				}
				assert.True(t, v.Field(i).IsZero(), "%s.%s should be unset", kind, field.Name)
			}
		})
	}
}

func TestKinds_AllRegistered(t *testing.T) {
	assert.Len(t, Kinds(), 30)
	for _, k := range Kinds() {
		assert.True(t, k.Known(), k)
	}
	assert.False(t, Kind("LambdaFunction").Known())
}

func TestNormalize_EBSVolumeFromWire(t *testing.T) {
	var raw wire.Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": {"S": "vol-1"},
		"resourceType": {"S": "EBSVolume"},
		"accountId": {"S": "123456789012"},
		"region": {"S": "us-east-1"},
		"size": {"N": "100"},
		"encrypted": {"BOOL": true},
		"state": {"S": "in-use"},
		"attachedInstanceIds": {"L": [{"S": "i-1"}, {"S": "i-2"}]},
		"tags": {"S": "[{\"Key\":\"Name\",\"Value\":\"data\"}]"},
		"createdAt": {"S": "2024-05-01T10:00:00Z"}
	}`), &raw))

	r := Normalize(raw)
	vol, ok := r.(*EBSVolume)
	require.True(t, ok)

	require.NotNil(t, vol.Size)
	assert.Equal(t, 100.0, *vol.Size)
	assert.Nil(t, vol.SizeGiB)
	require.NotNil(t, vol.Encrypted)
	assert.True(t, *vol.Encrypted)
	require.NotNil(t, vol.VolumeState)
	assert.Equal(t, "in-use", *vol.VolumeState)
	assert.Equal(t, []string{"i-1", "i-2"}, vol.AttachedInstanceIDs)
	assert.Equal(t, "data", vol.Name)
	assert.Equal(t, 2024, vol.CreatedAt.Year())
	assert.Equal(t, "EBSVolume:us-east-1", vol.ResourceTypeRegionID)
}

func TestNormalize_VolumeSizeNotCrossFilled(t *testing.T) {
	r := Normalize(wire.Record{"resourceType": "EBSVolume", "sizeGiB": 8})
	vol := r.(*EBSVolume)
	require.NotNil(t, vol.SizeGiB)
	assert.Equal(t, 8.0, *vol.SizeGiB)
	assert.Nil(t, vol.Size)
}

func TestNormalize_MalformedFieldsAreUnset(t *testing.T) {
	r := Normalize(wire.Record{
		"resourceType":       "EC2Instance",
		"healthChecksPassed": "abc",
		"isWindows":          "maybe",
		"ramUtilization":     map[string]any{"N": "NaN"},
	})
	inst := r.(*EC2Instance)
	assert.Nil(t, inst.HealthChecksPassed)
	assert.Nil(t, inst.IsWindows)
	assert.Nil(t, inst.RAMUtilization)
}

func TestNormalize_ResourceTypeRegionID(t *testing.T) {
	t.Run("missing region", func(t *testing.T) {
		r := Normalize(wire.Record{
			"resourceType":         "VPC",
			"resourceTypeRegionId": "VPC#us-east-1#vpc-1",
		})
		assert.Empty(t, r.Common().ResourceTypeRegionID)
	})
	t.Run("stored value ignored", func(t *testing.T) {
		r := Normalize(wire.Record{
			"resourceType":         "VPC",
			"region":               "eu-west-1",
			"resourceTypeRegionId": "VPC#us-east-1#vpc-1",
		})
		assert.Equal(t, "VPC:eu-west-1", r.Common().ResourceTypeRegionID)
	})
}

func TestNormalize_LegacyDiscriminant(t *testing.T) {
	assert.Equal(t, KindSubnet, Normalize(wire.Record{"__typename": "Subnet"}).Kind())
	assert.Equal(t, KindAMI, Normalize(wire.Record{"type": "AMI"}).Kind())
	assert.Equal(t, KindVPC, Normalize(wire.Record{"resourceType": "VPC", "type": "AMI"}).Kind())
}

func TestNormalize_NameFallsBackToTag(t *testing.T) {
	r := Normalize(wire.Record{
		"resourceType": "EC2Instance",
		"instanceName": "N/A",
		"tags":         []any{map[string]any{"key": "name", "value": "web-1"}},
	})
	assert.Equal(t, "web-1", r.Common().Name)

	r = Normalize(wire.Record{
		"resourceType": "EC2Instance",
		"instanceName": "api-1",
		"tags":         []any{map[string]any{"Key": "Name", "Value": "web-1"}},
	})
	assert.Equal(t, "api-1", r.Common().Name)
}

func TestNormalize_HumanReadableSizes(t *testing.T) {
	b := Normalize(wire.Record{"resourceType": "S3Bucket", "storageBytes": "59.28 TB", "objectCount": "42"}).(*S3Bucket)
	assert.Nil(t, b.StorageBytes)
	require.NotNil(t, b.StorageHuman)
	assert.Equal(t, "59.28 TB", *b.StorageHuman)
	require.NotNil(t, b.ObjectCount)
	assert.Equal(t, int64(42), *b.ObjectCount)

	b = Normalize(wire.Record{"resourceType": "S3Bucket", "storageBytes": map[string]any{"N": "1024"}}).(*S3Bucket)
	require.NotNil(t, b.StorageBytes)
	assert.Equal(t, 1024.0, *b.StorageBytes)
	assert.Nil(t, b.StorageHuman)
}

func TestNormalize_MultiValuedFields(t *testing.T) {
	inst := Normalize(wire.Record{
		"resourceType":       "EC2Instance",
		"instancePrivateIps": `["10.0.0.1","10.0.0.2"]`,
		"availabilityZones":  "us-east-1a, us-east-1b",
	}).(*EC2Instance)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, inst.PrivateIPs)
	assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, inst.AvailabilityZones)

	asg := Normalize(wire.Record{
		"resourceType":      "AutoScalingGroup",
		"vpcZoneIdentifier": "subnet-a,subnet-b",
	}).(*AutoScalingGroup)
	assert.Equal(t, []string{"subnet-a", "subnet-b"}, asg.SubnetIDs)
}

func TestNormalize_IndexedListFields(t *testing.T) {
	tests := []struct {
		name  string
		raw   wire.Record
		check func(t *testing.T, r Resource)
	}{
		{
			name: "load balancer",
			raw: wire.Record{
				"resourceType":        "LoadBalancer",
				"AvailabilityZones_0": "us-east-1a",
				"AvailabilityZones_1": map[string]any{"S": "us-east-1b"},
				"SecurityGroups_0":    "sg-1",
				"TargetGroups_0":      "arn:tg/1",
				"TargetGroups_1":      "arn:tg/2",
			},
			check: func(t *testing.T, r Resource) {
				lb := r.(*LoadBalancer)
				assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, lb.AvailabilityZones)
				assert.Equal(t, []string{"sg-1"}, lb.SecurityGroups)
				assert.Equal(t, []string{"arn:tg/1", "arn:tg/2"}, lb.TargetGroups)
			},
		},
		{
			name: "security group ports",
			raw: wire.Record{
				"resourceType":          "SecurityGroup",
				"ExposedIngressPorts_0": 22,
				"ExposedIngressPorts_1": map[string]any{"N": "3389"},
				"ExposedEgressPorts_0":  "443",
			},
			check: func(t *testing.T, r Resource) {
				sg := r.(*SecurityGroup)
				assert.Equal(t, []string{"22", "3389"}, sg.ExposedIngressPorts)
				assert.Equal(t, []string{"443"}, sg.ExposedEgressPorts)
			},
		},
		{
			name: "classic load balancer",
			raw: wire.Record{
				"resourceType":     "ClassicLoadBalancer",
				"Subnets_0":        "subnet-a",
				"SecurityGroups_0": "sg-1",
				"Instances_0":      "i-1",
				"Instances_1":      "i-2",
			},
			check: func(t *testing.T, r Resource) {
				lb := r.(*ClassicLoadBalancer)
				assert.Equal(t, []string{"subnet-a"}, lb.Subnets)
				assert.Equal(t, []string{"sg-1"}, lb.SecurityGroups)
				assert.Equal(t, []string{"i-1", "i-2"}, lb.Instances)
			},
		},
		{
			name: "vpc endpoint",
			raw: wire.Record{
				"resourceType":       "VPCEndpoint",
				"SubnetIds_0":        "subnet-a",
				"RouteTableIds_0":    "rtb-1",
				"SecurityGroupIds_0": "sg-1",
			},
			check: func(t *testing.T, r Resource) {
				ep := r.(*VPCEndpoint)
				assert.Equal(t, []string{"subnet-a"}, ep.SubnetIDs)
				assert.Equal(t, []string{"rtb-1"}, ep.RouteTableIDs)
				assert.Equal(t, []string{"sg-1"}, ep.SecurityGroupIDs)
			},
		},
		{
			name: "nat gateway",
			raw:  wire.Record{"resourceType": "NATGateway", "PublicIps_0": "1.2.3.4", "PublicIps_1": "5.6.7.8"},
			check: func(t *testing.T, r Resource) {
				assert.Equal(t, []string{"1.2.3.4", "5.6.7.8"}, r.(*NATGateway).PublicIPs)
			},
		},
		{
			name: "internet gateway",
			raw:  wire.Record{"resourceType": "InternetGateway", "AttachedVpcs_0": "vpc-1"},
			check: func(t *testing.T, r Resource) {
				assert.Equal(t, []string{"vpc-1"}, r.(*InternetGateway).AttachedVpcIDs)
			},
		},
		{
			name: "route table lower-case prefix",
			raw:  wire.Record{"resourceType": "RouteTable", "associatedSubnets_0": "subnet-a", "associatedSubnets_1": "subnet-b"},
			check: func(t *testing.T, r Resource) {
				assert.Equal(t, []string{"subnet-a", "subnet-b"}, r.(*RouteTable).AssociatedSubnets)
			},
		},
		{
			name: "network acl",
			raw:  wire.Record{"resourceType": "NetworkACL", "associatedSubnets_0": "subnet-a"},
			check: func(t *testing.T, r Resource) {
				assert.Equal(t, []string{"subnet-a"}, r.(*NetworkACL).AssociatedSubnets)
			},
		},
		{
			name: "auto scaling group",
			raw: wire.Record{
				"resourceType":        "AutoScalingGroup",
				"InstanceIds_0":       "i-1",
				"AvailabilityZones_0": "eu-west-1a",
				"LoadBalancerNames_0": "legacy-lb",
				"TargetGroupARNs_0":   "arn:tg/1",
			},
			check: func(t *testing.T, r Resource) {
				asg := r.(*AutoScalingGroup)
				assert.Equal(t, []string{"i-1"}, asg.InstanceIDs)
				assert.Equal(t, []string{"eu-west-1a"}, asg.AvailabilityZones)
				assert.Equal(t, []string{"legacy-lb"}, asg.LoadBalancerNames)
				assert.Equal(t, []string{"arn:tg/1"}, asg.TargetGroupARNs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Normalize(tt.raw))
		})
	}
}

func TestNormalize_IndexedListStopsAtGap(t *testing.T) {
	lb := Normalize(wire.Record{
		"resourceType":   "LoadBalancer",
		"TargetGroups_0": "arn:tg/1",
		"TargetGroups_2": "arn:tg/3",
	}).(*LoadBalancer)
	assert.Equal(t, []string{"arn:tg/1"}, lb.TargetGroups)
}

func TestNormalize_DirectListWinsOverIndexed(t *testing.T) {
	lb := Normalize(wire.Record{
		"resourceType":        "LoadBalancer",
		"availabilityZones":   []any{"us-east-1c"},
		"AvailabilityZones_0": "us-east-1a",
	}).(*LoadBalancer)
	assert.Equal(t, []string{"us-east-1c"}, lb.AvailabilityZones)
}

func TestNormalize_GenericIndexedZones(t *testing.T) {
	g := Normalize(wire.Record{
		"resourceType":        "LambdaFunction",
		"AvailabilityZones_0": "us-east-1a",
		"Layers_0":            "layer-1",
	}).(*Generic)
	assert.Equal(t, []string{"us-east-1a"}, g.AvailabilityZones)
	assert.NotContains(t, g.Fields, "AvailabilityZones_0")
	assert.Equal(t, "layer-1", g.Fields["Layers_0"])
}

func TestNormalize_GenericKeepsUnknownFields(t *testing.T) {
	r := Normalize(wire.Record{
		"id":           "fn-1",
		"resourceType": "LambdaFunction",
		"region":       "us-east-1",
		"runtime":      map[string]any{"S": "go1.x"},
		"memory":       map[string]any{"N": "128"},
	})
	g, ok := r.(*Generic)
	require.True(t, ok)
	assert.Equal(t, Kind("LambdaFunction"), g.Kind())
	assert.Equal(t, map[string]any{"runtime": "go1.x", "memory": 128.0}, g.Fields)

	data, err := json.Marshal(g)
	require.NoError(t, err)
	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "go1.x", flat["runtime"])
	assert.Equal(t, "fn-1", flat["id"])
	assert.Equal(t, "LambdaFunction:us-east-1", flat["resourceTypeRegionId"])
}

func TestNormalize_NilRecord(t *testing.T) {
	r := Normalize(nil)
	_, ok := r.(*Generic)
	assert.True(t, ok)
	assert.Empty(t, r.Common().ResourceTypeRegionID)
}

func TestNormalizeAll_KeepsOrder(t *testing.T) {
	out := NormalizeAll([]wire.Record{
		{"id": "a", "resourceType": "VPC"},
		{"id": "b", "resourceType": "Subnet"},
		{"id": "c", "resourceType": "Unknown"},
	})
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Common().ID)
	assert.Equal(t, "b", out[1].Common().ID)
	assert.Equal(t, "c", out[2].Common().ID)
}

func TestSelect(t *testing.T) {
	rs := NormalizeAll([]wire.Record{
		{"id": "a", "resourceType": "VPC", "region": "us-east-1", "accountId": "1"},
		{"id": "b", "resourceType": "VPC", "region": "eu-west-1", "accountId": "1"},
		{"id": "c", "resourceType": "Subnet", "region": "us-east-1", "accountId": "2"},
	})
	assert.Len(t, Select(rs, Filter{}), 3)
	assert.Len(t, Select(rs, Filter{Kind: KindVPC}), 2)
	assert.Len(t, Select(rs, Filter{Region: "us-east-1"}), 2)

	got := Select(rs, Filter{Kind: KindVPC, AccountID: "1", Region: "eu-west-1"})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Common().ID)
}
